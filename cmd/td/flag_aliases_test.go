package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestFlagAliasesUseSingleFlag(t *testing.T) {
	var description, priority string
	cmd := &cobra.Command{Use: "example"}
	addTaskFlagAliases(cmd)
	cmd.Flags().StringVarP(&description, "description", "d", "", "Example description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Example priority")

	if err := cmd.Flags().Set("desc", "Hello"); err != nil {
		t.Fatalf("set desc alias: %v", err)
	}
	if description != "Hello" {
		t.Fatalf("expected description to be set via alias, got %q", description)
	}
	if !cmd.Flags().Changed("description") {
		t.Fatal("expected description flag to be marked as changed")
	}

	if err := cmd.Flags().Set("prio", "high"); err != nil {
		t.Fatalf("set prio alias: %v", err)
	}
	if priority != "high" {
		t.Fatalf("expected priority to be set via alias, got %q", priority)
	}

	usage := cmd.Flags().FlagUsages()
	if strings.Contains(usage, "--desc ") {
		t.Fatalf("did not expect alias to appear in usage, got %q", usage)
	}
	if !strings.Contains(usage, "-d, --description") {
		t.Fatalf("expected shorthand to appear inline, got %q", usage)
	}
}

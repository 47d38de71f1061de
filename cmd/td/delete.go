package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

var deleteForce bool

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, release, err := openTaskStore()
	if err != nil {
		return err
	}
	defer release()

	for _, arg := range args {
		id, err := resolveTaskID(store, arg)
		if err != nil {
			return err
		}
		t, _ := store.Get(id)

		if !deleteForce && term.IsTerminal(int(os.Stdin.Fd())) {
			ok, err := confirm(fmt.Sprintf("Delete task %s (%s)? [y/N] ", t.ID, t.Title))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("Skipped task %s\n", t.ID)
				continue
			}
		}

		store.Delete(id)
		fmt.Printf("Deleted task %s: %s\n", t.ID, t.Title)
	}
	warnIfUnsaved(store)
	return nil
}

func confirm(prompt string) (bool, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

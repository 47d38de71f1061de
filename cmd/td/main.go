// Package main implements the td CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "td",
	Short:         "Taskdesk - personal task management",
	SilenceUsage:  true,
	SilenceErrors: false,
}

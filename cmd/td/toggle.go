package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk/task"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Toggle one or more tasks between pending and completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runToggle,
}

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Alias for toggle",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd, doneCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
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
		toggled, ok := store.Toggle(id)
		if !ok {
			return fmt.Errorf("task %s not found", id)
		}
		if toggled.Status == task.StatusCompleted {
			fmt.Printf("Completed task %s: %s\n", toggled.ID, toggled.Title)
		} else {
			fmt.Printf("Reopened task %s: %s\n", toggled.ID, toggled.Title)
		}
	}
	warnIfUnsaved(store)
	return nil
}

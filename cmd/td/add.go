package main

import (
	"fmt"

	"github.com/spf13/cobra"

	internalstrings "github.com/taskdesk/taskdesk/internal/strings"
	"github.com/taskdesk/taskdesk/task"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addDescription string
	addPriority    string
	addDueDate     string
	addDueTime     string
	addCategory    string
	addEstimate    int
	addTags        string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority (low, medium, high)")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addDueTime, "due-time", "", "Due time (HH:MM)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label")
	addCmd.Flags().IntVarP(&addEstimate, "estimate", "e", 0, "Estimated minutes")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Tags (comma-separated)")
	addTaskFlagAliases(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	draft := task.Draft{
		Title:            args[0],
		Description:      addDescription,
		Priority:         task.Priority(addPriority),
		Status:           task.StatusPending,
		DueDate:          addDueDate,
		DueTime:          addDueTime,
		Category:         addCategory,
		EstimatedMinutes: addEstimate,
		Tags:             internalstrings.SplitList(addTags),
	}
	if err := task.ValidateDraft(draft); err != nil {
		return err
	}

	store, release, err := openTaskStore()
	if err != nil {
		return err
	}
	defer release()

	created := store.Create(draft)
	warnIfUnsaved(store)
	fmt.Printf("Created task %s: %s\n", created.ID, created.Title)
	return nil
}

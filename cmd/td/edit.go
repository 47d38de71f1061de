package main

import (
	"fmt"

	"github.com/spf13/cobra"

	internalstrings "github.com/taskdesk/taskdesk/internal/strings"
	"github.com/taskdesk/taskdesk/task"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var (
	editTitle       string
	editDescription string
	editPriority    string
	editStatus      string
	editDueDate     string
	editDueTime     string
	editCategory    string
	editEstimate    int
	editTags        string
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (low, medium, high)")
	editCmd.Flags().StringVar(&editStatus, "status", "", "New status (pending, completed)")
	editCmd.Flags().StringVar(&editDueDate, "due", "", "New due date (YYYY-MM-DD, empty string clears)")
	editCmd.Flags().StringVar(&editDueTime, "due-time", "", "New due time (HH:MM, empty string clears)")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	editCmd.Flags().IntVarP(&editEstimate, "estimate", "e", 0, "New estimated minutes")
	editCmd.Flags().StringVarP(&editTags, "tags", "t", "", "New tags (comma-separated)")
	addTaskFlagAliases(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, release, err := openTaskStore()
	if err != nil {
		return err
	}
	defer release()

	id, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}
	existing, _ := store.Get(id)

	draft := task.Draft{
		Title:            existing.Title,
		Description:      existing.Description,
		Priority:         existing.Priority,
		Status:           existing.Status,
		DueDate:          existing.DueDate,
		DueTime:          existing.DueTime,
		Category:         existing.Category,
		EstimatedMinutes: existing.EstimatedMinutes,
		ActualMinutes:    existing.ActualMinutes,
		Tags:             existing.Tags,
		CompletedAt:      existing.CompletedAt,
	}

	changed := false
	apply := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
			changed = true
		}
	}
	apply("title", func() { draft.Title = editTitle })
	apply("description", func() { draft.Description = editDescription })
	apply("priority", func() { draft.Priority = task.Priority(editPriority) })
	apply("status", func() { draft.Status = task.Status(editStatus) })
	apply("due", func() { draft.DueDate = editDueDate })
	apply("due-time", func() { draft.DueTime = editDueTime })
	apply("category", func() { draft.Category = editCategory })
	apply("estimate", func() { draft.EstimatedMinutes = editEstimate })
	apply("tags", func() { draft.Tags = internalstrings.SplitList(editTags) })

	if !changed {
		return fmt.Errorf("nothing to change; pass at least one field flag")
	}
	if err := task.ValidateDraft(draft); err != nil {
		return err
	}

	updated, ok := store.Update(id, draft)
	if !ok {
		return fmt.Errorf("task %s not found", id)
	}
	warnIfUnsaved(store)
	fmt.Printf("Updated task %s: %s\n", updated.ID, updated.Title)
	return nil
}

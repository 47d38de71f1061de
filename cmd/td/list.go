package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/internal/ui"
	"github.com/taskdesk/taskdesk/task"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

var (
	listSearch   string
	listStatus   string
	listPriority string
	listJSON     bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by title or description substring")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, completed, all)")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "Filter by priority (low, medium, high, all)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	status := listStatus
	if status == "" {
		if cfg, err := config.Load(); err == nil {
			status = cfg.List.Status
		}
	}

	store, release, err := openTaskStore()
	if err != nil {
		return err
	}
	defer release()

	visible := task.VisibleTasks(store.All(), task.Query{
		Search:   listSearch,
		Status:   status,
		Priority: listPriority,
	})

	if listJSON {
		return printJSON(visible)
	}

	if len(visible) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	fmt.Print(taskTable(visible, time.Now()))
	return nil
}

func taskTable(tasks []task.Task, now time.Time) string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	prefixLengths := ui.UniqueIDPrefixLengths(ids)

	builder := ui.NewTableBuilder([]string{"ID", "PRI", "TITLE", "DUE", "CATEGORY", "TAGS"}, len(tasks))
	for _, t := range tasks {
		overdue := t.Overdue(now)
		due := t.DueDate
		if due != "" && t.DueTime != "" {
			due += " " + t.DueTime
		}
		builder.AddRow([]string{
			ui.HighlightID(t.ID, prefixLengths[strings.ToLower(t.ID)]),
			ui.StylePriority(t.Priority),
			ui.StyleTitle(t, overdue),
			ui.StyleDue(due, overdue),
			t.Category,
			strings.Join(t.Tags, ","),
		})
	}
	return builder.String()
}

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taskdesk/taskdesk/internal/markdown"
	"github.com/taskdesk/taskdesk/internal/ui"
	"github.com/taskdesk/taskdesk/task"
)

var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	store, release, err := openTaskStore()
	if err != nil {
		return err
	}
	defer release()

	tasks := make([]task.Task, 0, len(args))
	for _, arg := range args {
		id, err := resolveTaskID(store, arg)
		if err != nil {
			return err
		}
		t, _ := store.Get(id)
		tasks = append(tasks, t)
	}

	if showJSON {
		return printJSON(tasks)
	}

	now := time.Now()
	for i, t := range tasks {
		if i > 0 {
			fmt.Println()
		}
		printTaskDetail(t, now)
	}
	return nil
}

func printTaskDetail(t task.Task, now time.Time) {
	width := outputWidth()

	header := fmt.Sprintf("%s  %s", t.ID, t.Title)
	fmt.Println(wordwrap.String(header, width))

	fmt.Printf("  status:    %s\n", t.Status)
	fmt.Printf("  priority:  %s\n", ui.StylePriority(t.Priority))
	if t.DueDate != "" {
		due := t.DueDate
		if t.DueTime != "" {
			due += " " + t.DueTime
		}
		fmt.Printf("  due:       %s\n", ui.StyleDue(due, t.Overdue(now)))
	}
	if t.Category != "" {
		fmt.Printf("  category:  %s\n", t.Category)
	}
	if len(t.Tags) > 0 {
		fmt.Printf("  tags:      %s\n", strings.Join(t.Tags, ", "))
	}
	if t.EstimatedMinutes > 0 {
		fmt.Printf("  estimate:  %s\n", ui.FormatMinutes(t.EstimatedMinutes))
	}
	if t.ActualMinutes != nil {
		fmt.Printf("  tracked:   %s\n", ui.FormatMinutes(*t.ActualMinutes))
	}
	fmt.Printf("  created:   %s (%s)\n", t.CreatedAt.Format("2006-01-02 15:04"), ui.FormatTimeAgo(t.CreatedAt, now))
	if t.CompletedAt != nil {
		fmt.Printf("  completed: %s (%s)\n", t.CompletedAt.Format("2006-01-02 15:04"), ui.FormatTimeAgo(*t.CompletedAt, now))
	}

	if rendered := markdown.SafeRender(width, 2, []byte(t.Description)); len(rendered) > 0 {
		fmt.Println()
		fmt.Println(string(rendered))
	}
}

func outputWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

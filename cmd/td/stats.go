package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk/internal/ui"
	"github.com/taskdesk/taskdesk/stats"
	"github.com/taskdesk/taskdesk/task"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the task dashboard summary",
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, release, err := openTaskStore()
	if err != nil {
		return err
	}
	defer release()

	now := time.Now()
	summary := stats.Summarize(store.All(), now)

	if statsJSON {
		return printJSON(summary)
	}

	fmt.Println(ui.Title.Render("Overview"))
	overview := ui.NewTableBuilder([]string{"TOTAL", "PENDING", "COMPLETED", "OVERDUE", "RATE", "SCORE", "AVG"}, 1)
	overview.AddRow([]string{
		fmt.Sprintf("%d", summary.Counts.Total),
		fmt.Sprintf("%d", summary.Counts.Pending),
		fmt.Sprintf("%d", summary.Counts.Completed),
		fmt.Sprintf("%d", summary.Counts.Overdue),
		fmt.Sprintf("%.0f%%", summary.CompletionRate),
		fmt.Sprintf("%.0f", summary.ProductivityScore),
		ui.FormatMinutes(summary.AverageMinutes),
	})
	fmt.Print(overview.String())

	fmt.Println()
	fmt.Println(ui.Title.Render("Pending by priority"))
	fmt.Printf("  high %d · medium %d · low %d\n",
		summary.Priorities.High, summary.Priorities.Medium, summary.Priorities.Low)

	printTaskSection("Due today", summary.DueToday, now)
	printTaskSection("Due this week", summary.DueThisWeek, now)
	printTaskSection("Upcoming", summary.Upcoming, now)
	printTaskSection("Recently completed", summary.RecentlyCompleted, now)

	if len(summary.Categories) > 0 {
		fmt.Println()
		fmt.Println(ui.Title.Render("Categories"))
		for _, c := range summary.Categories {
			fmt.Printf("  %s: %d\n", c.Category, c.Count)
		}
	}
	return nil
}

func printTaskSection(title string, tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(ui.Title.Render(title))
	fmt.Print(taskTable(tasks, now))
}

// Package stats computes dashboard statistics over a task list.
//
// Every function here is pure: the result depends only on the task list
// and the supplied wall-clock time, and the input slice is never mutated.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/taskdesk/taskdesk/task"
)

// Caps for the dashboard's recent and upcoming lists.
const (
	recentlyCompletedCap = 3
	upcomingCap          = 5
)

// Counts holds the headline task counters.
type Counts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// CountTasks tallies totals, completions, and overdue pending tasks.
func CountTasks(tasks []task.Task, now time.Time) Counts {
	counts := Counts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case task.StatusCompleted:
			counts.Completed++
		default:
			counts.Pending++
		}
		if t.Overdue(now) {
			counts.Overdue++
		}
	}
	return counts
}

// CompletionRate returns the percentage of tasks completed, 0 for an
// empty list.
func CompletionRate(tasks []task.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks)) * 100
}

// DueToday returns tasks whose due date equals today's calendar date.
func DueToday(tasks []task.Task, now time.Time) []task.Task {
	var due []task.Task
	for _, t := range tasks {
		if t.DueOn(now) {
			due = append(due, t)
		}
	}
	return due
}

// WeekStart returns the most recent Sunday at or before the given day,
// truncated to midnight.
func WeekStart(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DueThisWeek returns tasks whose due date falls between the start of the
// current week (Sunday) and today, inclusive. Future days of the week are
// excluded: the dashboard reports the week so far, not the week to come.
func DueThisWeek(tasks []task.Task, now time.Time) []task.Task {
	start := WeekStart(now).Format(task.DateLayout)
	today := now.Format(task.DateLayout)

	var due []task.Task
	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		if t.DueDate >= start && t.DueDate <= today {
			due = append(due, t)
		}
	}
	return due
}

// AverageCompletionMinutes returns the mean tracked duration across
// completed tasks that have one, rounded to the nearest minute. Returns 0
// when no completed task has a tracked duration.
func AverageCompletionMinutes(tasks []task.Task) int {
	total, counted := 0, 0
	for _, t := range tasks {
		if t.Status != task.StatusCompleted || t.ActualMinutes == nil {
			continue
		}
		total += *t.ActualMinutes
		counted++
	}
	if counted == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(counted)))
}

// ProductivityScore blends completion rate, an overdue penalty, and a
// same-day-completion bonus into a 0-100 score. An empty list scores 0.
func ProductivityScore(tasks []task.Task, now time.Time) float64 {
	if len(tasks) == 0 {
		return 0
	}
	counts := CountTasks(tasks, now)
	base := float64(counts.Completed) / float64(counts.Total) * 100
	penalty := float64(counts.Overdue) / float64(counts.Total) * 20

	bonus := 0.0
	for _, t := range DueToday(tasks, now) {
		if t.Status == task.StatusCompleted {
			bonus += 5
		}
	}

	score := base - penalty + bonus
	return math.Max(0, math.Min(100, score))
}

// PriorityBreakdown counts pending tasks grouped by priority.
type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// PendingByPriority counts the pending tasks at each priority level.
func PendingByPriority(tasks []task.Task) PriorityBreakdown {
	var breakdown PriorityBreakdown
	for _, t := range tasks {
		if t.Status != task.StatusPending {
			continue
		}
		switch t.Priority {
		case task.PriorityHigh:
			breakdown.High++
		case task.PriorityMedium:
			breakdown.Medium++
		case task.PriorityLow:
			breakdown.Low++
		}
	}
	return breakdown
}

// CategoryCount pairs a category label with its task count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ByCategory counts all tasks grouped by non-empty category, ordered by
// first occurrence in the list.
func ByCategory(tasks []task.Task) []CategoryCount {
	index := make(map[string]int)
	var counts []CategoryCount
	for _, t := range tasks {
		if t.Category == "" {
			continue
		}
		if i, ok := index[t.Category]; ok {
			counts[i].Count++
			continue
		}
		index[t.Category] = len(counts)
		counts = append(counts, CategoryCount{Category: t.Category, Count: 1})
	}
	return counts
}

// RecentlyCompleted returns up to 3 completed tasks, most recent first.
// Tasks missing a completion timestamp fall back to their creation time.
func RecentlyCompleted(tasks []task.Task) []task.Task {
	var completed []task.Task
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed = append(completed, t)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completionTime(completed[i]).After(completionTime(completed[j]))
	})
	if len(completed) > recentlyCompletedCap {
		completed = completed[:recentlyCompletedCap]
	}
	return completed
}

func completionTime(t task.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return t.CreatedAt
}

// Upcoming returns up to 5 pending tasks with a due date, soonest first.
func Upcoming(tasks []task.Task) []task.Task {
	var pending []task.Task
	for _, t := range tasks {
		if t.Status == task.StatusPending && t.DueDate != "" {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate < pending[j].DueDate
	})
	if len(pending) > upcomingCap {
		pending = pending[:upcomingCap]
	}
	return pending
}

// Summary bundles every dashboard statistic for a single render.
type Summary struct {
	Counts            Counts            `json:"counts"`
	CompletionRate    float64           `json:"completionRate"`
	ProductivityScore float64           `json:"productivityScore"`
	AverageMinutes    int               `json:"averageCompletionMinutes"`
	DueToday          []task.Task       `json:"dueToday"`
	DueThisWeek       []task.Task       `json:"dueThisWeek"`
	Priorities        PriorityBreakdown `json:"priorities"`
	Categories        []CategoryCount   `json:"categories"`
	RecentlyCompleted []task.Task       `json:"recentlyCompleted"`
	Upcoming          []task.Task       `json:"upcoming"`
}

// Summarize computes the full dashboard summary in one pass over the API.
func Summarize(tasks []task.Task, now time.Time) Summary {
	return Summary{
		Counts:            CountTasks(tasks, now),
		CompletionRate:    CompletionRate(tasks),
		ProductivityScore: ProductivityScore(tasks, now),
		AverageMinutes:    AverageCompletionMinutes(tasks),
		DueToday:          DueToday(tasks, now),
		DueThisWeek:       DueThisWeek(tasks, now),
		Priorities:        PendingByPriority(tasks),
		Categories:        ByCategory(tasks),
		RecentlyCompleted: RecentlyCompleted(tasks),
		Upcoming:          Upcoming(tasks),
	}
}

package task

import (
	"sort"
	"strings"
)

// Query configures which tasks VisibleTasks returns.
type Query struct {
	// Search matches case-insensitively against title and description.
	// Empty matches everything.
	Search string

	// Status is "pending", "completed", or "all". Empty means all.
	Status string

	// Priority is "low", "medium", "high", or "all". Empty means all.
	Priority string
}

// Matches reports whether a task satisfies every predicate in the query.
func (q Query) Matches(t Task) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		title := strings.ToLower(t.Title)
		description := strings.ToLower(t.Description)
		if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
			return false
		}
	}
	if q.Status != "" && q.Status != FilterAll && string(t.Status) != q.Status {
		return false
	}
	if q.Priority != "" && q.Priority != FilterAll && string(t.Priority) != q.Priority {
		return false
	}
	return true
}

// VisibleTasks filters tasks by the query and orders the result for
// display: priority descending, then due date ascending (tasks with a due
// date before those without), then creation time descending. The input
// slice is never mutated and the output is deterministic for equal inputs.
func VisibleTasks(tasks []Task, q Query) []Task {
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Matches(t) {
			visible = append(visible, t)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		if a.DueDate != "" && b.DueDate != "" {
			if a.DueDate != b.DueDate {
				return a.DueDate < b.DueDate
			}
		} else if a.DueDate != "" {
			return true
		} else if b.DueDate != "" {
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return visible
}

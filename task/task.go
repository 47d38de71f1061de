// Package task implements the task list at the core of taskdesk.
//
// The Store owns the canonical in-memory list of tasks and mirrors every
// mutation to a persistence adapter. All reads and filtered views are
// computed from the in-memory list.
//
// The public API mirrors the user-facing operations:
//   - Create, Update, Toggle, Delete, SetActualMinutes for the task lifecycle
//   - All, Get, VisibleTasks for querying
package task

import "time"

// Task represents a single to-do item.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from initial title + timestamp).
	ID string `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// DueDate is the calendar date the task is due ("2006-01-02"), or empty.
	DueDate string `json:"dueDate"`

	// DueTime is the clock time the task is due ("15:04"), or empty.
	DueTime string `json:"dueTime"`

	// CreatedAt is when the task was created. Never changes afterwards.
	CreatedAt time.Time `json:"createdAt"`

	// CompletedAt is when the task was last marked completed (nil while pending).
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// Category is a free-text grouping label, or empty.
	Category string `json:"category"`

	// EstimatedMinutes is the author-supplied time target in minutes (0 if unset).
	EstimatedMinutes int `json:"estimatedDuration,omitempty"`

	// ActualMinutes is the tracked time spent in minutes (nil if never tracked).
	ActualMinutes *int `json:"actualDuration,omitempty"`

	// Tags is an order-preserving set of free-text labels.
	Tags []string `json:"tags"`
}

// Overdue reports whether the task is pending with a due date before today.
// Tasks due today are not overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.Status != StatusPending || t.DueDate == "" {
		return false
	}
	return t.DueDate < now.Format(DateLayout)
}

// DueOn reports whether the task's due date equals the given calendar day.
func (t Task) DueOn(day time.Time) bool {
	return t.DueDate != "" && t.DueDate == day.Format(DateLayout)
}

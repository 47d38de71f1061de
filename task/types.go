package task

// Status represents the state of a task.
type Status string

const (
	// StatusPending indicates the task has not been completed yet.
	StatusPending Status = "pending"

	// StatusCompleted indicates the task has been completed.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the least urgent level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the most urgent level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values, least urgent first.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Layouts for the textual date and time fields on a Task.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500

// FilterAll matches every status or priority in a Query.
const FilterAll = "all"

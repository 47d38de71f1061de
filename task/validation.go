package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyTitle is returned when a task title is empty or only whitespace.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDueDate is returned when a due date is not a YYYY-MM-DD string.
	ErrInvalidDueDate = errors.New("due date must be formatted as YYYY-MM-DD")

	// ErrInvalidDueTime is returned when a due time is not an HH:MM string.
	ErrInvalidDueTime = errors.New("due time must be formatted as HH:MM")

	// ErrNegativeDuration is returned when a duration in minutes is negative.
	ErrNegativeDuration = errors.New("duration minutes cannot be negative")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateDueDate checks a due date string. Empty is allowed.
func ValidateDueDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDueDate, value)
	}
	return nil
}

// ValidateDueTime checks a due time string. Empty is allowed.
func ValidateDueTime(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(TimeLayout, value); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDueTime, value)
	}
	return nil
}

// ValidateDraft checks a draft at the input boundary. The store itself
// assumes drafts are well-formed.
func ValidateDraft(draft Draft) error {
	if err := ValidateTitle(draft.Title); err != nil {
		return err
	}
	if draft.Priority != "" && !draft.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, draft.Priority)
	}
	if draft.Status != "" && !draft.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, draft.Status)
	}
	if err := ValidateDueDate(draft.DueDate); err != nil {
		return err
	}
	if err := ValidateDueTime(draft.DueTime); err != nil {
		return err
	}
	if draft.EstimatedMinutes < 0 {
		return fmt.Errorf("%w: estimated %d", ErrNegativeDuration, draft.EstimatedMinutes)
	}
	if draft.ActualMinutes != nil && *draft.ActualMinutes < 0 {
		return fmt.Errorf("%w: actual %d", ErrNegativeDuration, *draft.ActualMinutes)
	}
	return nil
}

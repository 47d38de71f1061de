package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Write report"); err != nil {
		t.Errorf("expected valid title, got %v", err)
	}
	if !errors.Is(ValidateTitle(""), ErrEmptyTitle) {
		t.Error("expected ErrEmptyTitle for empty title")
	}
	if !errors.Is(ValidateTitle(strings.Repeat("x", MaxTitleLength+1)), ErrTitleTooLong) {
		t.Error("expected ErrTitleTooLong for oversized title")
	}
}

func TestValidateDueDate(t *testing.T) {
	if err := ValidateDueDate(""); err != nil {
		t.Errorf("expected empty due date to be allowed, got %v", err)
	}
	if err := ValidateDueDate("2024-01-10"); err != nil {
		t.Errorf("expected well-formed due date to pass, got %v", err)
	}
	if !errors.Is(ValidateDueDate("10/01/2024"), ErrInvalidDueDate) {
		t.Error("expected ErrInvalidDueDate for slash format")
	}
}

func TestValidateDueTime(t *testing.T) {
	if err := ValidateDueTime("09:30"); err != nil {
		t.Errorf("expected well-formed due time to pass, got %v", err)
	}
	if !errors.Is(ValidateDueTime("9:30pm"), ErrInvalidDueTime) {
		t.Error("expected ErrInvalidDueTime for 12-hour format")
	}
}

func TestValidateDraft(t *testing.T) {
	valid := Draft{Title: "OK", Priority: PriorityLow, Status: StatusPending, DueDate: "2024-01-10", DueTime: "09:00"}
	if err := ValidateDraft(valid); err != nil {
		t.Errorf("expected valid draft, got %v", err)
	}

	if !errors.Is(ValidateDraft(Draft{Title: "x", Priority: "urgent"}), ErrInvalidPriority) {
		t.Error("expected ErrInvalidPriority for unknown priority")
	}
	if !errors.Is(ValidateDraft(Draft{Title: "x", Status: "archived"}), ErrInvalidStatus) {
		t.Error("expected ErrInvalidStatus for unknown status")
	}
	if !errors.Is(ValidateDraft(Draft{Title: "x", EstimatedMinutes: -5}), ErrNegativeDuration) {
		t.Error("expected ErrNegativeDuration for negative estimate")
	}
	negative := -1
	if !errors.Is(ValidateDraft(Draft{Title: "x", ActualMinutes: &negative}), ErrNegativeDuration) {
		t.Error("expected ErrNegativeDuration for negative actual")
	}
}

func TestStatusAndPriorityValidity(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if Status("open").IsValid() {
		t.Error("expected 'open' to be invalid")
	}
	for _, priority := range ValidPriorities() {
		if !priority.IsValid() {
			t.Errorf("expected %q to be valid", priority)
		}
	}
	if Priority("critical").IsValid() {
		t.Error("expected 'critical' to be invalid")
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() <= PriorityMedium.Rank() || PriorityMedium.Rank() <= PriorityLow.Rank() {
		t.Error("expected high > medium > low rank")
	}
}

func TestTaskOverdue(t *testing.T) {
	now := mustParseDate(t, "2024-01-15")
	pendingPast := Task{Status: StatusPending, DueDate: "2024-01-10"}
	pendingToday := Task{Status: StatusPending, DueDate: "2024-01-15"}
	completedPast := Task{Status: StatusCompleted, DueDate: "2024-01-10"}
	pendingNoDue := Task{Status: StatusPending}

	if !pendingPast.Overdue(now) {
		t.Error("expected pending task due in the past to be overdue")
	}
	if pendingToday.Overdue(now) {
		t.Error("expected task due today to not be overdue")
	}
	if completedPast.Overdue(now) {
		t.Error("expected completed task to not be overdue")
	}
	if pendingNoDue.Overdue(now) {
		t.Error("expected task without due date to not be overdue")
	}
}

package task

import (
	"reflect"
	"testing"
	"time"
)

func mkTask(id, title string, priority Priority, status Status, dueDate string, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Title:     title,
		Priority:  priority,
		Status:    status,
		DueDate:   dueDate,
		CreatedAt: createdAt,
	}
}

func TestVisibleTasks_SearchMatchesTitleAndDescription(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		mkTask("a", "Write report", PriorityMedium, StatusPending, "", base),
		{ID: "b", Title: "Chores", Description: "write shopping list", Priority: PriorityMedium, Status: StatusPending, CreatedAt: base},
		mkTask("c", "Walk dog", PriorityMedium, StatusPending, "", base),
	}

	got := VisibleTasks(tasks, Query{Search: "WRITE"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, item := range got {
		if item.ID == "c" {
			t.Error("expected 'Walk dog' to be excluded")
		}
	}
}

func TestVisibleTasks_StatusAndPriorityFilters(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		mkTask("a", "One", PriorityHigh, StatusPending, "", base),
		mkTask("b", "Two", PriorityHigh, StatusCompleted, "", base),
		mkTask("c", "Three", PriorityLow, StatusPending, "", base),
	}

	got := VisibleTasks(tasks, Query{Status: "pending", Priority: "high"})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only task 'a', got %v", taskIDs(got))
	}

	got = VisibleTasks(tasks, Query{Status: FilterAll, Priority: FilterAll})
	if len(got) != 3 {
		t.Fatalf("expected all 3 tasks, got %d", len(got))
	}
}

func TestVisibleTasks_Ordering(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		mkTask("low", "Low", PriorityLow, StatusPending, "", base),
		mkTask("noDue", "No due date", PriorityHigh, StatusPending, "", base.Add(time.Hour)),
		mkTask("lateDue", "Due later", PriorityHigh, StatusPending, "2024-01-20", base),
		mkTask("earlyDue", "Due sooner", PriorityHigh, StatusPending, "2024-01-10", base),
		mkTask("medium", "Medium", PriorityMedium, StatusPending, "", base),
	}

	got := taskIDs(VisibleTasks(tasks, Query{}))
	want := []string{"earlyDue", "lateDue", "noDue", "medium", "low"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestVisibleTasks_DueDateBeatsNoDueDate(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		mkTask("bare", "No date", PriorityMedium, StatusPending, "", base.Add(time.Hour)),
		mkTask("dated", "Dated", PriorityMedium, StatusPending, "2024-01-10", base),
	}

	got := VisibleTasks(tasks, Query{})
	if got[0].ID != "dated" {
		t.Errorf("expected dated task first, got %v", taskIDs(got))
	}
}

func TestVisibleTasks_NoDueDatesSortByCreationDesc(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		mkTask("older", "Older", PriorityMedium, StatusPending, "", base),
		mkTask("newer", "Newer", PriorityMedium, StatusPending, "", base.Add(time.Hour)),
	}

	got := VisibleTasks(tasks, Query{})
	if got[0].ID != "newer" {
		t.Errorf("expected most recently created first, got %v", taskIDs(got))
	}
}

func TestVisibleTasks_Idempotent(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		mkTask("a", "Alpha", PriorityHigh, StatusPending, "2024-01-05", base),
		mkTask("b", "Beta", PriorityLow, StatusCompleted, "", base),
		mkTask("c", "Gamma", PriorityMedium, StatusPending, "", base),
	}
	q := Query{Status: "pending"}

	once := VisibleTasks(tasks, q)
	twice := VisibleTasks(once, q)
	if !reflect.DeepEqual(taskIDs(once), taskIDs(twice)) {
		t.Errorf("expected refiltering to be a no-op: %v vs %v", taskIDs(once), taskIDs(twice))
	}
}

func TestVisibleTasks_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		mkTask("z", "Last", PriorityLow, StatusPending, "", base),
		mkTask("a", "First", PriorityHigh, StatusPending, "", base),
	}
	before := taskIDs(tasks)

	VisibleTasks(tasks, Query{})
	if !reflect.DeepEqual(taskIDs(tasks), before) {
		t.Error("expected input slice order to be untouched")
	}
}

func TestVisibleTasks_EndToEndScenario(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	adapter := newMemoryAdapter()
	current := base
	store := Open(adapter, Options{Now: func() time.Time { return current }})

	store.Create(Draft{Title: "Laundry", Priority: PriorityLow})
	current = current.Add(time.Minute)
	store.Create(Draft{Title: "Dishes", Priority: PriorityLow})
	current = current.Add(time.Minute)
	finished := store.Create(Draft{Title: "Old report", Priority: PriorityMedium})
	store.Toggle(finished.ID)
	current = current.Add(time.Minute)
	created := store.Create(Draft{Title: "Write report", Priority: PriorityHigh, DueDate: "2024-01-10"})

	got := VisibleTasks(store.All(), Query{Status: "pending", Priority: FilterAll})
	if len(got) != 3 {
		t.Fatalf("expected 3 pending tasks, got %d", len(got))
	}
	if got[0].ID != created.ID {
		t.Errorf("expected the new high-priority task first, got %v", taskIDs(got))
	}
	for _, item := range got {
		if item.ID == finished.ID {
			t.Error("expected completed task to be excluded")
		}
	}
}

func taskIDs(tasks []Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, item := range tasks {
		ids = append(ids, item.ID)
	}
	return ids
}

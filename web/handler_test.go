package web

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/taskdesk/taskdesk/task"
)

type memoryAdapter struct {
	values map[string][]byte
}

func newMemoryAdapter() *memoryAdapter {
	return &memoryAdapter{values: map[string][]byte{}}
}

func (m *memoryAdapter) Load(key string) ([]byte, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memoryAdapter) Save(key string, value []byte) error {
	m.values[key] = value
	return nil
}

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*Handler, *task.Store) {
	t.Helper()
	store := task.Open(newMemoryAdapter(), task.Options{Now: func() time.Time { return testNow }})
	handler := NewHandler(Options{
		Store:  store,
		Logger: log.New(io.Discard, "", 0),
		Now:    func() time.Time { return testNow },
	})
	return handler, store
}

func newTestServer(t *testing.T) (*httptest.Server, *task.Store) {
	t.Helper()
	handler, store := newTestHandler(t)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, store
}

// client that does not follow redirects, so tests can assert on them.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestTasksViewShowsTasks(t *testing.T) {
	server, store := newTestServer(t)
	created := store.Create(task.Draft{Title: "Write report", Priority: task.PriorityHigh, Status: task.StatusPending})

	resp, err := http.Get(server.URL + "/tasks")
	if err != nil {
		t.Fatalf("GET /tasks: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Write report") {
		t.Error("page should list the task title")
	}
	if !strings.Contains(string(body), created.ID) {
		t.Error("page should link to the task")
	}
}

func TestTasksViewFiltersByQuery(t *testing.T) {
	server, store := newTestServer(t)
	store.Create(task.Draft{Title: "Buy groceries", Priority: task.PriorityLow, Status: task.StatusPending})
	store.Create(task.Draft{Title: "File taxes", Priority: task.PriorityHigh, Status: task.StatusPending})

	resp, err := http.Get(server.URL + "/tasks?q=groceries")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Buy groceries") {
		t.Error("matching task missing from page")
	}
	// The non-matching task appears only if filtering is broken; its
	// title is unique enough to assert on.
	if strings.Count(page, "File taxes") > 0 {
		t.Error("non-matching task should be filtered out")
	}
}

func TestTasksCreateFormRoundTrip(t *testing.T) {
	server, store := newTestServer(t)

	form := url.Values{
		"title":             {"Plan sprint"},
		"priority":          {"high"},
		"status":            {"pending"},
		"due_date":          {"2024-01-12"},
		"tags":              {"work, planning"},
		"estimated_minutes": {"45"},
	}
	resp, err := noRedirectClient().PostForm(server.URL+"/tasks/create", form)
	if err != nil {
		t.Fatalf("POST /tasks/create: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if store.Len() != 1 {
		t.Fatalf("store has %d tasks, want 1", store.Len())
	}
	created := store.All()[0]
	if created.Title != "Plan sprint" || created.Priority != task.PriorityHigh {
		t.Errorf("created = %+v", created)
	}
	if created.EstimatedMinutes != 45 {
		t.Errorf("EstimatedMinutes = %d, want 45", created.EstimatedMinutes)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "work" || created.Tags[1] != "planning" {
		t.Errorf("Tags = %v", created.Tags)
	}
	if location := resp.Header.Get("Location"); !strings.Contains(location, created.ID) {
		t.Errorf("redirect %q should select the new task", location)
	}
}

func TestTasksCreateRejectsEmptyTitle(t *testing.T) {
	server, store := newTestServer(t)

	resp, err := noRedirectClient().PostForm(server.URL+"/tasks/create", url.Values{"title": {"  "}})
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()

	if store.Len() != 0 {
		t.Error("invalid create should not add a task")
	}
	if location := resp.Header.Get("Location"); !strings.Contains(location, "create=1") {
		t.Errorf("redirect %q should return to the create form", location)
	}
}

func TestTasksToggle(t *testing.T) {
	server, store := newTestServer(t)
	created := store.Create(task.Draft{Title: "Water plants", Priority: task.PriorityLow, Status: task.StatusPending})

	resp, err := noRedirectClient().PostForm(server.URL+"/tasks/toggle?id="+created.ID, url.Values{})
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()

	got, ok := store.Get(created.ID)
	if !ok {
		t.Fatal("task vanished")
	}
	if got.Status != task.StatusCompleted {
		t.Errorf("Status = %q, want completed", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt should be stamped")
	}
}

func TestTasksDelete(t *testing.T) {
	server, store := newTestServer(t)
	created := store.Create(task.Draft{Title: "Old chore", Priority: task.PriorityLow, Status: task.StatusPending})

	resp, err := noRedirectClient().PostForm(server.URL+"/tasks/delete?id="+created.ID, url.Values{})
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()

	if store.Len() != 0 {
		t.Error("task should be deleted")
	}
}

func TestTasksUpdatePreservesCompletion(t *testing.T) {
	server, store := newTestServer(t)
	created := store.Create(task.Draft{Title: "Ship release", Priority: task.PriorityHigh, Status: task.StatusPending})
	store.Toggle(created.ID)

	form := url.Values{
		"title":    {"Ship release v2"},
		"priority": {"high"},
		"status":   {"completed"},
	}
	resp, err := noRedirectClient().PostForm(server.URL+"/tasks/update?id="+created.ID, form)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()

	got, _ := store.Get(created.ID)
	if got.Title != "Ship release v2" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.CompletedAt == nil {
		t.Error("edit should carry the completion timestamp through")
	}
}

func TestDashboardView(t *testing.T) {
	server, store := newTestServer(t)
	store.Create(task.Draft{Title: "Due today", Priority: task.PriorityMedium, Status: task.StatusPending, DueDate: testNow.Format(task.DateLayout)})

	resp, err := http.Get(server.URL + "/dashboard")
	if err != nil {
		t.Fatalf("GET /dashboard: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Due today (1)") {
		t.Errorf("dashboard should count the task due today:\n%s", page)
	}
	if !strings.Contains(page, "Productivity score") {
		t.Error("dashboard should show the productivity score")
	}
}

func TestProductivityView(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/productivity?quote=1")
	if err != nil {
		t.Fatalf("GET /productivity: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Winston Churchill") {
		t.Error("quote index 1 should show the second quote")
	}
	if !strings.Contains(page, "https://pomofocus.io") {
		t.Error("tool links should be rendered")
	}
	if !strings.Contains(page, "quote=2") {
		t.Error("next-quote link should advance the rotation")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/tasks", "text/plain", strings.NewReader(""))
	if err != nil {
		t.Fatalf("POST /tasks: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}

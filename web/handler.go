// Package web serves the local task dashboard and its JSON API.
package web

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	internalstrings "github.com/taskdesk/taskdesk/internal/strings"
	"github.com/taskdesk/taskdesk/productivity"
	"github.com/taskdesk/taskdesk/stats"
	"github.com/taskdesk/taskdesk/task"
)

// Options configures the web handler.
type Options struct {
	Store  *task.Store
	Logger *log.Logger
	Now    func() time.Time
}

// Handler serves the task pages and JSON API over a single store.
// The store is not safe for concurrent use, so every read and mutation
// happens under the handler's mutex.
type Handler struct {
	mux       *http.ServeMux
	templates *templateWrapper
	logger    *log.Logger
	now       func() time.Time

	mu    sync.Mutex
	store *task.Store
	draft *taskFormDraft
}

// NewHandler creates a web handler over the given store.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "taskdesk: ", log.LstdFlags)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	handler := &Handler{
		templates: newTemplateWrapper(),
		logger:    logger,
		now:       now,
		store:     opts.Store,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks", handler.handleTasks)
	mux.HandleFunc("/tasks/create", handler.handleTasksCreate)
	mux.HandleFunc("/tasks/update", handler.handleTasksUpdate)
	mux.HandleFunc("/tasks/toggle", handler.handleTasksToggle)
	mux.HandleFunc("/tasks/delete", handler.handleTasksDelete)
	mux.HandleFunc("/tasks/duration", handler.handleTasksDuration)
	mux.HandleFunc("/dashboard", handler.handleDashboard)
	mux.HandleFunc("/productivity", handler.handleProductivity)
	handler.registerAPI(mux)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/tasks", http.StatusSeeOther)
	})
	handler.mux = mux
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type taskFormValues struct {
	Title         string
	Description   string
	Priority      string
	Status        string
	DueDate       string
	DueTime       string
	Category      string
	EstimatedMins string
	Tags          string
}

type taskFormDraft struct {
	mode      string
	id        string
	err       string
	values    taskFormValues
	hasValues bool
}

func defaultTaskFormValues() taskFormValues {
	return taskFormValues{
		Priority: string(task.PriorityMedium),
		Status:   string(task.StatusPending),
	}
}

func taskFormValuesFromTask(t task.Task) taskFormValues {
	estimate := ""
	if t.EstimatedMinutes > 0 {
		estimate = strconv.Itoa(t.EstimatedMinutes)
	}
	return taskFormValues{
		Title:         t.Title,
		Description:   t.Description,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		DueDate:       t.DueDate,
		DueTime:       t.DueTime,
		Category:      t.Category,
		EstimatedMins: estimate,
		Tags:          strings.Join(t.Tags, ", "),
	}
}

func taskFormValuesFromRequest(r *http.Request) taskFormValues {
	return taskFormValues{
		Title:         strings.TrimSpace(r.FormValue("title")),
		Description:   r.FormValue("description"),
		Priority:      strings.TrimSpace(r.FormValue("priority")),
		Status:        strings.TrimSpace(r.FormValue("status")),
		DueDate:       strings.TrimSpace(r.FormValue("due_date")),
		DueTime:       strings.TrimSpace(r.FormValue("due_time")),
		Category:      r.FormValue("category"),
		EstimatedMins: strings.TrimSpace(r.FormValue("estimated_minutes")),
		Tags:          r.FormValue("tags"),
	}
}

// draft converts form input into a store draft, validating as it goes.
func (values taskFormValues) draft() (task.Draft, error) {
	draft := task.Draft{
		Title:       values.Title,
		Description: values.Description,
		Priority:    task.Priority(values.Priority),
		Status:      task.Status(values.Status),
		DueDate:     values.DueDate,
		DueTime:     values.DueTime,
		Category:    values.Category,
		Tags:        internalstrings.SplitList(values.Tags),
	}
	if values.EstimatedMins != "" {
		minutes, err := strconv.Atoi(values.EstimatedMins)
		if err != nil {
			return task.Draft{}, fmt.Errorf("estimated minutes must be a number")
		}
		draft.EstimatedMinutes = minutes
	}
	if draft.Priority == "" {
		draft.Priority = task.PriorityMedium
	}
	if draft.Status == "" {
		draft.Status = task.StatusPending
	}
	if err := task.ValidateDraft(draft); err != nil {
		return task.Draft{}, err
	}
	return draft, nil
}

func (h *Handler) handleTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	query := task.Query{
		Search:   trimmedQueryValue(r, "q"),
		Status:   trimmedQueryValue(r, "status"),
		Priority: trimmedQueryValue(r, "priority"),
	}

	h.mu.Lock()
	all := h.store.All()
	persistErr := h.store.PersistError()
	h.mu.Unlock()

	now := h.now()
	visible := task.VisibleTasks(all, query)

	createMode := r.URL.Query().Get("create") == "1"
	selectedID := trimmedQueryValue(r, "id")
	selected := (*task.Task)(nil)
	if !createMode {
		selected = selectTask(visible, selectedID)
		if selected == nil && len(visible) > 0 {
			selected = &visible[0]
			selectedID = selected.ID
		}
	} else {
		selectedID = ""
	}

	formValues := defaultTaskFormValues()
	if selected != nil {
		formValues = taskFormValuesFromTask(*selected)
	}

	taskError := ""
	if persistErr != nil {
		taskError = "changes are not being saved: " + persistErr.Error()
	}
	if draft := h.consumeDraft(createMode, selectedID); draft != nil {
		if draft.err != "" {
			taskError = draft.err
		}
		if draft.hasValues {
			formValues = draft.values
		}
		if draft.mode == "create" {
			createMode = true
			selected = nil
			selectedID = ""
		}
	}

	data := pageData{
		ActiveTab:       "tasks",
		Now:             now,
		Tasks:           visible,
		Selected:        selected,
		SelectedID:      selectedID,
		Create:          createMode,
		Form:            formValues,
		TaskError:       taskError,
		Query:           query,
		StatusOptions:   statusOptions(),
		PriorityOptions: priorityOptions(),
	}
	h.templates.Render(w, data)
}

func (h *Handler) handleTasksCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.setDraft(taskFormDraft{mode: "create", err: "invalid form input"})
		http.Redirect(w, r, "/tasks?create=1", http.StatusSeeOther)
		return
	}
	values := taskFormValuesFromRequest(r)
	draft, err := values.draft()
	if err != nil {
		h.setDraft(taskFormDraft{mode: "create", err: err.Error(), values: values, hasValues: true})
		http.Redirect(w, r, "/tasks?create=1", http.StatusSeeOther)
		return
	}

	h.mu.Lock()
	created := h.store.Create(draft)
	h.mu.Unlock()

	http.Redirect(w, r, "/tasks?id="+created.ID, http.StatusSeeOther)
}

func (h *Handler) handleTasksUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	taskID := trimmedQueryValue(r, "id")
	if err := r.ParseForm(); err != nil {
		h.setDraft(taskFormDraft{mode: "update", id: taskID, err: "invalid form input"})
		http.Redirect(w, r, taskRedirectPath(taskID), http.StatusSeeOther)
		return
	}
	values := taskFormValuesFromRequest(r)
	if taskID == "" {
		h.setDraft(taskFormDraft{mode: "update", err: "task id is required", values: values, hasValues: true})
		http.Redirect(w, r, taskRedirectPath(taskID), http.StatusSeeOther)
		return
	}
	draft, err := values.draft()
	if err != nil {
		h.setDraft(taskFormDraft{mode: "update", id: taskID, err: err.Error(), values: values, hasValues: true})
		http.Redirect(w, r, "/tasks?id="+taskID, http.StatusSeeOther)
		return
	}

	h.mu.Lock()
	existing, ok := h.store.Get(taskID)
	if ok {
		draft.ActualMinutes = existing.ActualMinutes
		draft.CompletedAt = existing.CompletedAt
		_, ok = h.store.Update(taskID, draft)
	}
	h.mu.Unlock()

	if !ok {
		h.setDraft(taskFormDraft{mode: "update", id: taskID, err: "task not found", values: values, hasValues: true})
	}
	http.Redirect(w, r, "/tasks?id="+taskID, http.StatusSeeOther)
}

func (h *Handler) handleTasksToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	taskID := trimmedQueryValue(r, "id")
	if taskID == "" {
		h.setDraft(taskFormDraft{mode: "update", err: "task id is required"})
		http.Redirect(w, r, "/tasks", http.StatusSeeOther)
		return
	}

	h.mu.Lock()
	h.store.Toggle(taskID)
	h.mu.Unlock()

	http.Redirect(w, r, "/tasks?id="+taskID, http.StatusSeeOther)
}

func (h *Handler) handleTasksDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	taskID := trimmedQueryValue(r, "id")
	if taskID == "" {
		h.setDraft(taskFormDraft{mode: "update", err: "task id is required"})
		http.Redirect(w, r, "/tasks", http.StatusSeeOther)
		return
	}

	h.mu.Lock()
	h.store.Delete(taskID)
	h.mu.Unlock()

	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

func (h *Handler) handleTasksDuration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	taskID := trimmedQueryValue(r, "id")
	if err := r.ParseForm(); err != nil || taskID == "" {
		h.setDraft(taskFormDraft{mode: "update", id: taskID, err: "task id is required"})
		http.Redirect(w, r, taskRedirectPath(taskID), http.StatusSeeOther)
		return
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(r.FormValue("minutes")))
	if err != nil || minutes < 0 {
		h.setDraft(taskFormDraft{mode: "update", id: taskID, err: "minutes must be a non-negative number"})
		http.Redirect(w, r, "/tasks?id="+taskID, http.StatusSeeOther)
		return
	}

	h.mu.Lock()
	h.store.SetActualMinutes(taskID, minutes)
	h.mu.Unlock()

	http.Redirect(w, r, "/tasks?id="+taskID, http.StatusSeeOther)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	h.mu.Lock()
	all := h.store.All()
	h.mu.Unlock()

	now := h.now()
	data := pageData{
		ActiveTab: "dashboard",
		Now:       now,
		Summary:   stats.Summarize(all, now),
	}
	h.templates.Render(w, data)
}

func (h *Handler) handleProductivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	quoteIndex := 0
	if raw := trimmedQueryValue(r, "quote"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			quoteIndex = parsed
		}
	}

	data := pageData{
		ActiveTab:  "productivity",
		Now:        h.now(),
		Links:      productivity.Links(),
		Tips:       productivity.Tips(),
		Quote:      productivity.QuoteAt(quoteIndex),
		NextQuote:  productivity.NextIndex(quoteIndex),
		QuoteIndex: quoteIndex,
	}
	h.templates.Render(w, data)
}

func (h *Handler) setDraft(draft taskFormDraft) {
	h.mu.Lock()
	h.draft = &draft
	h.mu.Unlock()
}

func (h *Handler) consumeDraft(createMode bool, selectedID string) *taskFormDraft {
	h.mu.Lock()
	defer h.mu.Unlock()
	draft := h.draft
	if draft == nil {
		return nil
	}
	if draft.mode == "update" && draft.id != "" && draft.id != selectedID {
		return nil
	}
	if draft.mode == "create" && !createMode && draft.err == "" {
		return nil
	}
	h.draft = nil
	return draft
}

func selectTask(tasks []task.Task, id string) *task.Task {
	if id == "" {
		return nil
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

func taskRedirectPath(id string) string {
	if id == "" {
		return "/tasks"
	}
	return "/tasks?id=" + id
}

func trimmedQueryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func writeMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

type selectOption struct {
	Value string
	Label string
}

func statusOptions() []selectOption {
	options := make([]selectOption, 0, len(task.ValidStatuses()))
	for _, status := range task.ValidStatuses() {
		options = append(options, selectOption{Value: string(status), Label: string(status)})
	}
	return options
}

func priorityOptions() []selectOption {
	options := make([]selectOption, 0, len(task.ValidPriorities()))
	for _, priority := range task.ValidPriorities() {
		options = append(options, selectOption{Value: string(priority), Label: string(priority)})
	}
	return options
}

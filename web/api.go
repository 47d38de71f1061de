package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/taskdesk/taskdesk/productivity"
	"github.com/taskdesk/taskdesk/stats"
	"github.com/taskdesk/taskdesk/task"
)

type tasksListRequest struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

type tasksListResponse struct {
	Tasks []task.Task `json:"tasks"`
}

type taskPayload struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         string   `json:"priority"`
	Status           string   `json:"status"`
	DueDate          string   `json:"dueDate"`
	DueTime          string   `json:"dueTime"`
	Category         string   `json:"category"`
	EstimatedMinutes int      `json:"estimatedDuration"`
	Tags             []string `json:"tags"`
}

type tasksCreateRequest struct {
	Task taskPayload `json:"task"`
}

type tasksCreateResponse struct {
	Task task.Task `json:"task"`
}

type tasksUpdateRequest struct {
	ID   string      `json:"id"`
	Task taskPayload `json:"task"`
}

type tasksUpdateResponse struct {
	Task task.Task `json:"task"`
}

type tasksToggleRequest struct {
	ID string `json:"id"`
}

type tasksToggleResponse struct {
	Task task.Task `json:"task"`
}

type tasksDeleteRequest struct {
	ID string `json:"id"`
}

type tasksDurationRequest struct {
	ID      string `json:"id"`
	Minutes int    `json:"minutes"`
}

type tasksDurationResponse struct {
	Task task.Task `json:"task"`
}

type statsResponse struct {
	Summary stats.Summary `json:"summary"`
}

type productivityResponse struct {
	Links  []productivity.Link  `json:"links"`
	Quotes []productivity.Quote `json:"quotes"`
}

type emptyResponse struct{}

func (h *Handler) registerAPI(mux *http.ServeMux) {
	mux.HandleFunc("/api/tasks/list", h.handleAPITasksList)
	mux.HandleFunc("/api/tasks/create", h.handleAPITasksCreate)
	mux.HandleFunc("/api/tasks/update", h.handleAPITasksUpdate)
	mux.HandleFunc("/api/tasks/toggle", h.handleAPITasksToggle)
	mux.HandleFunc("/api/tasks/delete", h.handleAPITasksDelete)
	mux.HandleFunc("/api/tasks/duration", h.handleAPITasksDuration)
	mux.HandleFunc("/api/stats", h.handleAPIStats)
	mux.HandleFunc("/api/productivity", h.handleAPIProductivity)
}

func (h *Handler) handleAPITasksList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	var request tasksListRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	all := h.store.All()
	h.mu.Unlock()

	visible := task.VisibleTasks(all, task.Query{
		Search:   request.Search,
		Status:   request.Status,
		Priority: request.Priority,
	})
	writeJSON(w, http.StatusOK, tasksListResponse{Tasks: visible})
}

func (h *Handler) handleAPITasksCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	var request tasksCreateRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	draft, err := request.Task.draft()
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	created := h.store.Create(draft)
	persistErr := h.store.PersistError()
	h.mu.Unlock()

	h.logPersistError(persistErr)
	writeJSON(w, http.StatusOK, tasksCreateResponse{Task: created})
}

func (h *Handler) handleAPITasksUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	var request tasksUpdateRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if request.ID == "" {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("task id is required"))
		return
	}
	draft, err := request.Task.draft()
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	existing, ok := h.store.Get(request.ID)
	var updated task.Task
	if ok {
		draft.ActualMinutes = existing.ActualMinutes
		draft.CompletedAt = existing.CompletedAt
		updated, ok = h.store.Update(request.ID, draft)
	}
	persistErr := h.store.PersistError()
	h.mu.Unlock()

	if !ok {
		h.writeError(w, r, http.StatusNotFound, fmt.Errorf("task %s not found", request.ID))
		return
	}
	h.logPersistError(persistErr)
	writeJSON(w, http.StatusOK, tasksUpdateResponse{Task: updated})
}

func (h *Handler) handleAPITasksToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	var request tasksToggleRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if request.ID == "" {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("task id is required"))
		return
	}

	h.mu.Lock()
	toggled, ok := h.store.Toggle(request.ID)
	persistErr := h.store.PersistError()
	h.mu.Unlock()

	if !ok {
		h.writeError(w, r, http.StatusNotFound, fmt.Errorf("task %s not found", request.ID))
		return
	}
	h.logPersistError(persistErr)
	writeJSON(w, http.StatusOK, tasksToggleResponse{Task: toggled})
}

func (h *Handler) handleAPITasksDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	var request tasksDeleteRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if request.ID == "" {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("task id is required"))
		return
	}

	h.mu.Lock()
	ok := h.store.Delete(request.ID)
	persistErr := h.store.PersistError()
	h.mu.Unlock()

	if !ok {
		h.writeError(w, r, http.StatusNotFound, fmt.Errorf("task %s not found", request.ID))
		return
	}
	h.logPersistError(persistErr)
	writeJSON(w, http.StatusOK, emptyResponse{})
}

func (h *Handler) handleAPITasksDuration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	var request tasksDurationRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if request.ID == "" {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("task id is required"))
		return
	}
	if request.Minutes < 0 {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("minutes must not be negative"))
		return
	}

	h.mu.Lock()
	updated, ok := h.store.SetActualMinutes(request.ID, request.Minutes)
	persistErr := h.store.PersistError()
	h.mu.Unlock()

	if !ok {
		h.writeError(w, r, http.StatusNotFound, fmt.Errorf("task %s not found", request.ID))
		return
	}
	h.logPersistError(persistErr)
	writeJSON(w, http.StatusOK, tasksDurationResponse{Task: updated})
}

func (h *Handler) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	h.mu.Lock()
	all := h.store.All()
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, statsResponse{Summary: stats.Summarize(all, h.now())})
}

func (h *Handler) handleAPIProductivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, productivityResponse{
		Links:  productivity.Links(),
		Quotes: productivity.Quotes(),
	})
}

// draft converts an API payload into a store draft.
func (p taskPayload) draft() (task.Draft, error) {
	draft := task.Draft{
		Title:            p.Title,
		Description:      p.Description,
		Priority:         task.Priority(p.Priority),
		Status:           task.Status(p.Status),
		DueDate:          p.DueDate,
		DueTime:          p.DueTime,
		Category:         p.Category,
		EstimatedMinutes: p.EstimatedMinutes,
		Tags:             p.Tags,
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

func (h *Handler) logPersistError(err error) {
	if err == nil || h.logger == nil {
		return
	}
	h.logger.Printf("persist failed, keeping changes in memory: %v", err)
}

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected extra JSON data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if h.logger != nil {
		h.logger.Printf("request %s %s failed (%d): %v", r.Method, r.URL.Path, status, err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

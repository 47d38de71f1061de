package task

import (
	"encoding/json"
	"time"
)

// StorageKey is the adapter key under which the task list is persisted.
const StorageKey = "tasks"

// Adapter persists the full task list under a fixed key.
// Load returns ok=false when the key has never been written.
type Adapter interface {
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
}

// Options configures how the store is opened.
type Options struct {
	// Key overrides the adapter key. Defaults to StorageKey.
	Key string

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time
}

// Store owns the canonical in-memory task list and mirrors every mutation
// to the adapter. There is exactly one mutator context per session, so no
// locking is needed; callers that share a store across goroutines (the web
// handler) serialize access themselves.
type Store struct {
	adapter    Adapter
	key        string
	now        func() time.Time
	tasks      []Task
	persistErr error
}

// Open loads the persisted task list and returns a store over it.
// A missing key, unreadable adapter, or corrupt payload yields an empty
// list: the session degrades to in-memory-only rather than failing.
func Open(adapter Adapter, opts Options) *Store {
	key := opts.Key
	if key == "" {
		key = StorageKey
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store := &Store{adapter: adapter, key: key, now: now}

	value, ok, err := adapter.Load(key)
	if err != nil {
		store.persistErr = err
		return store
	}
	if !ok {
		return store
	}

	var tasks []Task
	if err := json.Unmarshal(value, &tasks); err != nil {
		// Corrupt payload. Start empty; the next mutation overwrites it.
		return store
	}
	store.tasks = tasks
	return store
}

// PersistError returns the most recent adapter failure, or nil.
// Mutations continue to apply in memory when the adapter is failing.
func (s *Store) PersistError() error {
	return s.persistErr
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// All returns a copy of the task list in insertion order.
func (s *Store) All() []Task {
	return append([]Task(nil), s.tasks...)
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Draft holds the caller-supplied fields for a create or update.
// ID and CreatedAt are always assigned by the store. The store assumes
// drafts are well-formed; validate at the boundary with ValidateDraft.
type Draft struct {
	Title            string
	Description      string
	Priority         Priority
	Status           Status
	DueDate          string
	DueTime          string
	Category         string
	EstimatedMinutes int
	ActualMinutes    *int
	Tags             []string

	// CompletedAt carries a prior completion timestamp through an edit.
	// Ignored unless Status is completed.
	CompletedAt *time.Time
}

// Create adds a new task from the draft. The store assigns a fresh unique
// ID and the creation timestamp; status defaults to pending.
func (s *Store) Create(draft Draft) Task {
	now := s.now()
	created := s.applyDraft(Task{}, draft)
	created.ID = s.freshID(draft.Title, now)
	created.CreatedAt = now
	if created.Status == "" {
		created.Status = StatusPending
	}
	if created.Status != StatusCompleted {
		created.CompletedAt = nil
	} else if created.CompletedAt == nil {
		created.CompletedAt = &now
	}

	s.tasks = append(s.tasks, created)
	s.persist()
	return created
}

// Update replaces the fields of the task with the given ID, preserving its
// ID and CreatedAt. Returns false without mutating anything if the ID is
// not present.
func (s *Store) Update(id string, draft Draft) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}

	updated := s.applyDraft(s.tasks[i], draft)
	updated.ID = s.tasks[i].ID
	updated.CreatedAt = s.tasks[i].CreatedAt
	if updated.Status == "" {
		updated.Status = StatusPending
	}
	if updated.Status != StatusCompleted {
		updated.CompletedAt = nil
	} else if updated.CompletedAt == nil {
		now := s.now()
		updated.CompletedAt = &now
	}

	s.tasks[i] = updated
	s.persist()
	return updated, true
}

// Toggle flips a task between pending and completed. Completing stamps
// CompletedAt with the current time; reopening clears it.
func (s *Store) Toggle(id string) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}

	if s.tasks[i].Status == StatusCompleted {
		s.tasks[i].Status = StatusPending
		s.tasks[i].CompletedAt = nil
	} else {
		now := s.now()
		s.tasks[i].Status = StatusCompleted
		s.tasks[i].CompletedAt = &now
	}

	s.persist()
	return s.tasks[i], true
}

// Delete removes the task with the given ID. Returns false if absent.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persist()
	return true
}

// SetActualMinutes overwrites the tracked duration for a task. A missing
// ID is a no-op: timers may fire after their task has been deleted.
func (s *Store) SetActualMinutes(id string, minutes int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	s.tasks[i].ActualMinutes = &minutes
	s.persist()
	return s.tasks[i], true
}

func (s *Store) applyDraft(base Task, draft Draft) Task {
	base.Title = normalizeTitle(draft.Title)
	base.Description = draft.Description
	base.Priority = normalizePriority(draft.Priority)
	base.Status = normalizeStatus(draft.Status)
	base.DueDate = draft.DueDate
	base.DueTime = draft.DueTime
	base.Category = normalizeCategory(draft.Category)
	base.EstimatedMinutes = draft.EstimatedMinutes
	base.ActualMinutes = draft.ActualMinutes
	base.Tags = normalizeTags(draft.Tags)
	base.CompletedAt = draft.CompletedAt
	return base
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// freshID generates an ID that does not collide with any current task.
func (s *Store) freshID(title string, timestamp time.Time) string {
	for {
		id := GenerateID(title, timestamp)
		if s.index(id) < 0 {
			return id
		}
		timestamp = timestamp.Add(time.Nanosecond)
	}
}

// persist mirrors the full list to the adapter. Adapter failures are
// recorded and otherwise ignored: the in-memory list stays authoritative
// for the rest of the session.
func (s *Store) persist() {
	if s.adapter == nil {
		return
	}
	value, err := json.Marshal(s.tasks)
	if err != nil {
		s.persistErr = err
		return
	}
	if err := s.adapter.Save(s.key, value); err != nil {
		s.persistErr = err
		return
	}
	s.persistErr = nil
}

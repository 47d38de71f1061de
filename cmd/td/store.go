package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/task"
)

// openTaskStore opens the configured backend and the task store over it.
// The returned release func closes the backend.
func openTaskStore() (*task.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	backend, err := cfg.OpenStorage()
	if err != nil {
		return nil, nil, err
	}
	store := task.Open(backend, task.Options{})
	return store, func() { _ = backend.Close() }, nil
}

// resolveTaskID matches an argument against task IDs, accepting any
// unambiguous prefix.
func resolveTaskID(store *task.Store, arg string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(arg))
	if needle == "" {
		return "", fmt.Errorf("task id is required")
	}

	if _, ok := store.Get(needle); ok {
		return needle, nil
	}

	matches := []string{}
	for _, t := range store.All() {
		if strings.HasPrefix(strings.ToLower(t.ID), needle) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no task matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous: matches %s", arg, strings.Join(matches, ", "))
	}
}

// warnIfUnsaved reports a persistence failure after a mutation without
// failing the command; the change is still live in memory.
func warnIfUnsaved(store *task.Store) {
	if err := store.PersistError(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: changes not saved: %v\n", err)
	}
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

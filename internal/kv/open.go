package kv

import (
	"fmt"
	"os"
	"path/filepath"
)

// SQLiteFileName is the database file created under the data directory
// when the sqlite backend is selected.
const SQLiteFileName = "taskdesk.db"

// Open builds the store for a backend name rooted at the data directory.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir), nil
	case BackendSQLite:
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return OpenSQLite(filepath.Join(dir, SQLiteFileName))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

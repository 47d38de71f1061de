package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileStore keeps each key in its own JSON file under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir. The directory
// is created on first Save, not here.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// keyPath returns the path to the value file for a key.
func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// lockPath returns the path to the lock file for a key.
func (s *FileStore) lockPath(key string) string {
	return filepath.Join(s.dir, key+".lock")
}

// Load reads the value for a key. Returns ok=false if the key has never
// been written.
func (s *FileStore) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read value file: %w", err)
	}
	return data, true, nil
}

// Save writes the value for a key atomically via a temp file, holding an
// exclusive lock so concurrent processes don't interleave writes.
func (s *FileStore) Save(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(key), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	tmpFile, err := os.CreateTemp(s.dir, key+".tmp")
	if err != nil {
		return fmt.Errorf("create temp value file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(value)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp value file: %w", err)
	}

	if err := os.Rename(name, s.keyPath(key)); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename value file: %w", err)
	}

	return nil
}

// Close is a no-op; the file store holds no long-lived handles.
func (s *FileStore) Close() error {
	return nil
}

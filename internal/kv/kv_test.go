package kv

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingKey(t *testing.T) {
	s := NewFileStore(t.TempDir())

	_, ok, err := s.Load("tasks")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("expected ok=false for a key that was never written")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())

	want := []byte(`[{"id":"abc"}]`)
	if err := s.Save("tasks", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("tasks")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after Save")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load = %q, want %q", got, want)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Save("tasks", []byte("first")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("tasks", []byte("second")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, _, err := s.Load("tasks")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Load = %q, want %q", got, "second")
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewFileStore(dir)

	if err := s.Save("tasks", []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "tasks.json")); err != nil {
		t.Errorf("value file not created: %v", err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	_, ok, err := s.Load("tasks")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("expected ok=false before first Save")
	}

	if err := s.Save("tasks", []byte("first")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("tasks", []byte("second")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("tasks")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after Save")
	}
	if string(got) != "second" {
		t.Errorf("Load = %q, want %q", got, "second")
	}
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Save("tasks", []byte("persisted")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, ok, err := s2.Load("tasks")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok || string(got) != "persisted" {
		t.Errorf("Load = %q, ok=%v; want %q, true", got, ok, "persisted")
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	if _, err := Open(BackendFile, dir); err != nil {
		t.Errorf("Open(file): %v", err)
	}
	if _, err := Open("", dir); err != nil {
		t.Errorf("Open with empty backend should default to file: %v", err)
	}

	s, err := Open(BackendSQLite, dir)
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	s.Close()
	if _, err := os.Stat(filepath.Join(dir, SQLiteFileName)); err != nil {
		t.Errorf("sqlite database not created: %v", err)
	}

	if _, err := Open("redis", dir); err == nil {
		t.Error("expected error for unknown backend")
	}
}

// Package kv provides the keyed value stores that back task persistence.
//
// Both backends implement the same contract: Save overwrites the full
// value for a key, Load returns it with ok=false when the key has never
// been written. Values are opaque bytes; the task store serializes its
// list before handing it over.
package kv

// Store is a keyed value store with whole-value reads and writes.
type Store interface {
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
	Close() error
}

// Backend names accepted in configuration.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

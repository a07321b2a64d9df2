package api

import "errors"

// ErrKeyNotFound is returned by Storage.Get when no value exists under a
// key.
var ErrKeyNotFound = errors.New("key not found")

// Storage is the durable string key-value store behind progress
// persistence. The passo package ships in-memory, file, SQLite, Postgres,
// and Redis implementations; any store satisfying this contract can be
// injected instead.
//
// Controllers treat every Storage error as best-effort: failures are
// reported to the Observer and never interrupt navigation.
//
// Implementations must be safe for concurrent use when shared between
// controllers, for example through a session manager.
type Storage interface {
	// Get returns the value stored under key, or an error wrapping
	// ErrKeyNotFound when the key has no value.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

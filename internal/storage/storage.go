// Package storage defines the durable local key/value store behind the
// question and history stores. The backend is selected once at startup and
// passed down explicitly; tests use the in-memory implementation.
package storage

import "errors"

var ErrNotFound = errors.New("key not found")

// Backend is the persistence strategy: opaque bytes under string keys.
type Backend interface {
	Save(key string, value []byte) error
	Load(key string) ([]byte, error)
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

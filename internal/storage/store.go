// ABOUTME: Store interface for the key-value persistence backends.
// ABOUTME: String keys, opaque JSON values; Badger and SQLite implement it.
package storage

import "errors"

// ErrKeyNotFound is returned by Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// Store is the minimal key-value contract the gateway is built on. This
// interface allows swapping backends (e.g., for testing).
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

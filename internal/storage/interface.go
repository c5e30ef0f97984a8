package storage

import "errors"

// ErrNotFound is returned by Provider.Get when a key has never been written
var ErrNotFound = errors.New("key not found")

// Provider is a generic key/value persistence backend. Values are opaque
// serialized documents; typed access lives in Repository.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key/value access
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

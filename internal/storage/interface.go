package storage

import "errors"

var (
	// ErrNotInitialized is returned by Load when the backing file does not exist yet.
	ErrNotInitialized = errors.New("storage not initialized")
	// ErrNotLoaded is returned by data access before Init or Load.
	ErrNotLoaded = errors.New("storage not loaded")
)

// Provider is a local key-value blob store. Each key holds one serialized
// collection and is rewritten wholesale on every save.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Blobs. Get returns (nil, nil) for a missing key.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Keys() ([]string, error)

	// Snapshot writes a consistent copy of the whole store to dest.
	Snapshot(dest string) error

	// Utils
	GetConfigPath() string
}

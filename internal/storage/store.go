// Package storage provides abstractions for persistent profile storage.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the storage medium could not serve the request
// (disabled, full, or otherwise inaccessible). Callers are expected to
// degrade to in-memory state rather than fail the operation.
var ErrUnavailable = errors.New("storage unavailable")

// Store defines the key/value interface for profile persistence.
// This abstraction allows swapping backends (SQLite, in-memory, etc.)
// without changing the service layer, and lets tests inject a fake.
//
// Values are opaque byte strings. Every Put is a full overwrite of the key;
// there are no partial or append writes.
type Store interface {
	// Get retrieves the value for key. An absent key returns
	// (nil, false, nil); a medium failure returns an error wrapping
	// ErrUnavailable.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put stores value under key, overwriting any previous value.
	// A successful Put is durable and visible to the next Get.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Package driver defines the contract storage backends implement to persist
// encoded model values.
package driver

import (
	"context"
)

// Entry is a stored key-value pair with revision metadata.
type Entry struct {
	// Key is the key the entry is stored under.
	Key []byte
	// Value is the self-describing encoded model.
	Value []byte
	// ModRevision is the backend's revision of the last modification,
	// zero when the backend tracks none.
	ModRevision int64
}

// Driver is the interface storage backends must implement.
type Driver interface {
	// Get returns the entry stored under key.
	// The second result reports whether the key exists.
	Get(ctx context.Context, key []byte) (Entry, bool, error)

	// Put stores value under key, replacing any previous entry.
	Put(ctx context.Context, key []byte, value []byte) error

	// Delete removes the entry stored under key.
	// The result reports whether an entry was removed.
	Delete(ctx context.Context, key []byte) (bool, error)

	// Range returns entries whose keys start with prefix, in key order.
	// A limit of zero or less means no limit.
	Range(ctx context.Context, prefix []byte, limit int) ([]Entry, error)
}

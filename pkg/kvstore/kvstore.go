// Package kvstore provides the durable string-keyed store the state layer
// persists into. Values are JSON documents serialized by the repositories;
// the store itself treats them as opaque strings. Writes are crash-consistent
// per key but there are no cross-key transactions beyond what MultiSet offers
// on a given backend.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent. Callers that treat
// missing data as an empty default must check for it with errors.Is.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the process-wide key-value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set durably writes value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// MultiSet writes all pairs in one batch. Backends apply the batch
	// atomically where the underlying engine allows it.
	MultiSet(ctx context.Context, pairs map[string]string) error

	// MultiRemove deletes all given keys. Absent keys are ignored.
	MultiRemove(ctx context.Context, keys ...string) error

	// Close releases the underlying connection or file handle.
	Close() error
}

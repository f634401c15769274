// Package navstore persists router snapshots across application
// restarts. A Store holds one encoded snapshot per routing key; the
// SaveAll and RestoreAll helpers snapshot or restore every router
// registered in a MetaRouter in one call.
package navstore

import (
	"context"
	"errors"

	"github.com/wayfarer-ui/wayfarer/pkg/nav"
)

// Store is a snapshot persistence backend. Implementations must be safe
// for concurrent use.
type Store interface {
	// Save persists an encoded snapshot under key, overwriting any
	// previous snapshot for the same key.
	Save(ctx context.Context, key string, data []byte) error

	// Load retrieves the snapshot stored under key.
	// Returns (nil, nil) when no snapshot exists.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes the snapshot stored under key.
	// Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = errors.New("navstore: store is closed")

// SaveAll snapshots every router registered in meta and writes each to
// the store under its routing key. The first failure aborts the walk.
func SaveAll(ctx context.Context, store Store, meta *nav.MetaRouter) error {
	for _, key := range meta.Keys() {
		router, ok := meta.Lookup(key)
		if !ok {
			continue
		}
		data, err := router.EncodeState()
		if err != nil {
			return err
		}
		if err := store.Save(ctx, key.String(), data); err != nil {
			return err
		}
	}
	return nil
}

// RestoreAll loads the snapshot for every router registered in meta and
// restores it. Routers without a stored snapshot keep their current
// state. Malformed snapshot data aborts with the decode error.
func RestoreAll(ctx context.Context, store Store, meta *nav.MetaRouter) error {
	for _, key := range meta.Keys() {
		router, ok := meta.Lookup(key)
		if !ok {
			continue
		}
		data, err := store.Load(ctx, key.String())
		if err != nil {
			return err
		}
		if data == nil {
			continue
		}
		if err := router.RestoreState(data); err != nil {
			return err
		}
	}
	return nil
}

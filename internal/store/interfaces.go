package store

import "context"

// BlobRepository is a durable key-value store for opaque JSON payloads.
// Each domain collection (users, products, cart, orders, session) lives
// under its own string key.
type BlobRepository interface {
	// Read returns the payload stored under key, or [ErrKeyNotFound]
	// when no record exists.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write stores the payload under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error
	// Remove deletes the record stored under key. Removing an absent key
	// is not an error.
	Remove(ctx context.Context, key string) error
	// Clear deletes every record in the store.
	Clear(ctx context.Context) error
}

// Package kvstore is the persistence boundary: a flat string key-value
// mapping, durable across restarts. Only two keys exist in this app, the
// API credential and the serialized transaction history.
package kvstore

import "context"

type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// MultiRemove deletes every listed key in one best-effort operation.
	MultiRemove(ctx context.Context, keys ...string) error
}

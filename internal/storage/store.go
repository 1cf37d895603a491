// Package storage defines the key-value store the back-office core persists
// its state to, with an in-memory implementation for tests and ephemeral runs
// and a SQLite-backed implementation for durable local state.
//
// Contract shared by all implementations: Get returns (nil, nil) for an
// absent key, Set is an upsert, Delete is idempotent.
package storage

import "context"

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Package storage implements the client's durable key-value store. State
// that must survive a restart (the encoded credential, the cached identity,
// the cart snapshot) is kept here; each key has exactly one owning component.
package storage

import "context"

// Store is a persistent key-value facility.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - Delete on an absent key is a no-op.
//   - Update runs fn atomically: either every write inside fn is persisted
//     or none is.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

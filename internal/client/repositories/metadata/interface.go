// Package metadata is the durable key/value store of the client. It keeps the
// persisted session (bearer token and serialized identity) between runs.
package metadata

import (
	"context"
)

// Repository is a flat key/value table. Get returns (nil, nil) for a missing
// key; DeleteMany is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	DeleteMany(ctx context.Context, keys ...string) error
}

var _ Repository = (*SQLiteRepository)(nil)

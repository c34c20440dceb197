// Package kvstore provides the durable ordered key-value store the record
// collections are built on. Implementations must keep per-bucket insertion
// order and reject duplicate keys instead of overwriting.
package kvstore

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateKey is returned by Insert when the key already exists in
	// the bucket. The existing value is left untouched.
	ErrDuplicateKey = errors.New("kvstore: duplicate key")

	// ErrNotFound is returned by Get for a missing key.
	ErrNotFound = errors.New("kvstore: key not found")
)

// KV is an ordered key-value store partitioned into numbered buckets. Values
// are opaque payloads; List returns them in insertion order.
type KV interface {
	Insert(ctx context.Context, bucket int, key string, value []byte) error
	Get(ctx context.Context, bucket int, key string) ([]byte, error)
	List(ctx context.Context, bucket int) ([][]byte, error)
}

// Package records implements the persistent record store: four append-only
// collections keyed by generated ids, with the validation and uniqueness
// rules enforced at creation time.
package records

import (
	"context"
	"encoding/json"
	"fmt"

	"volunteerhub/internal/kvstore"
)

// Bucket indexes of the four durable collections.
const (
	bucketVolunteers = iota
	bucketEvents
	bucketRegistrations
	bucketFeedback
)

// Collection is a typed view over one bucket of the durable store. Records
// are stored as JSON documents keyed by their id.
type Collection[T any] struct {
	kv     kvstore.KV
	bucket int
}

func newCollection[T any](kv kvstore.KV, bucket int) *Collection[T] {
	return &Collection[T]{kv: kv, bucket: bucket}
}

// Insert stores a new record under id. An existing id is rejected with
// kvstore.ErrDuplicateKey, never overwritten.
func (c *Collection[T]) Insert(ctx context.Context, id string, record T) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return c.kv.Insert(ctx, c.bucket, id, payload)
}

// Get returns the record stored under id, or kvstore.ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var record T
	payload, err := c.kv.Get(ctx, c.bucket, id)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal(payload, &record); err != nil {
		return record, fmt.Errorf("decode record: %w", err)
	}
	return record, nil
}

// Values returns every stored record in collection order.
func (c *Collection[T]) Values(ctx context.Context) ([]T, error) {
	payloads, err := c.kv.List(ctx, c.bucket)
	if err != nil {
		return nil, err
	}
	values := make([]T, 0, len(payloads))
	for _, payload := range payloads {
		var record T
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		values = append(values, record)
	}
	return values, nil
}

package kvstore

import (
	"context"
	"sync"
)

// Memory is an in-memory KV used by tests and as a non-durable fallback. A
// slice per bucket keeps insertion order alongside the lookup map.
type Memory struct {
	mu      sync.RWMutex
	buckets map[int]*memoryBucket
}

type memoryBucket struct {
	values map[string][]byte
	order  []string
}

func NewMemory() *Memory {
	return &Memory{buckets: make(map[int]*memoryBucket)}
}

func (m *Memory) Insert(_ context.Context, bucket int, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[bucket]
	if !ok {
		b = &memoryBucket{values: make(map[string][]byte)}
		m.buckets[bucket] = b
	}
	if _, exists := b.values[key]; exists {
		return ErrDuplicateKey
	}
	b.values[key] = append([]byte(nil), value...)
	b.order = append(b.order, key)
	return nil
}

func (m *Memory) Get(_ context.Context, bucket int, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.buckets[bucket]
	if !ok {
		return nil, ErrNotFound
	}
	value, ok := b.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *Memory) List(_ context.Context, bucket int) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.buckets[bucket]
	if !ok {
		return nil, nil
	}
	values := make([][]byte, 0, len(b.order))
	for _, key := range b.order {
		values = append(values, append([]byte(nil), b.values[key]...))
	}
	return values, nil
}

var _ KV = (*Memory)(nil)

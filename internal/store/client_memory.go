// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"iter"
	"slices"
	"sync"
)

// memoryRecordStore is an in-process [RecordStore]. Used by tests and by the
// client when started with the ":memory:" DSN.
type memoryRecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryRecordStore constructs an empty in-memory [RecordStore].
func NewMemoryRecordStore() RecordStore {
	return &memoryRecordStore{records: make(map[string][]byte)}
}

func (m *memoryRecordStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = slices.Clone(value)
	return nil
}

func (m *memoryRecordStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return slices.Clone(value), nil
}

func (m *memoryRecordStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}

func (m *memoryRecordStore) Keys(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		m.mu.RLock()
		keys := make([]string, 0, len(m.records))
		for k := range m.records {
			keys = append(keys, k)
		}
		m.mu.RUnlock()

		slices.Sort(keys)
		for _, k := range keys {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}
			if !yield(k, nil) {
				return
			}
		}
	}
}

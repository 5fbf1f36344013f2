// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"iter"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// RecordStore is the durable client-side key/value store. Every single-key
// operation is atomic; there are no multi-key transactions.
type RecordStore interface {
	// Put writes value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Get returns the value under key or [ErrRecordNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys yields every key in ascending order. The sequence is lazy and
	// restartable: each range reads the store again, so keys written or
	// removed between two ranges are reflected in the second one.
	Keys(ctx context.Context) iter.Seq2[string, error]
}

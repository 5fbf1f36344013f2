// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

// IntentStore keeps offline mutations in a [RecordStore] under the keys
// save_<n>, update_<id> and remove_<id>.
//
// The <n> of a create key comes from a counter that only grows. It is
// seeded on first use from the highest save_ index already in the store,
// so a key that was removed for replay and may be re-inserted by a
// conflict retry is never handed out again.
type IntentStore struct {
	records RecordStore
	logger  *logger.Logger

	mu     sync.Mutex
	next   int64
	seeded bool
}

// NewIntentStore constructs an [IntentStore] over records.
func NewIntentStore(records RecordStore, logger *logger.Logger) *IntentStore {
	return &IntentStore{records: records, logger: logger}
}

// Enqueue persists an intent of the given kind for item and returns it.
// Update and delete intents are keyed by identity, so a second offline
// update of the same item overwrites the first.
func (s *IntentStore) Enqueue(ctx context.Context, kind models.IntentKind, item models.Item) (models.PendingIntent, error) {
	var key string
	switch kind {
	case models.IntentCreate:
		n, err := s.nextCreateIndex(ctx)
		if err != nil {
			return models.PendingIntent{}, err
		}
		key = models.CreateIntentKey(n)
	case models.IntentUpdate, models.IntentDelete:
		if !item.HasIdentity() {
			return models.PendingIntent{}, fmt.Errorf("%s intent requires an item identity", kind)
		}
		key = models.IntentKey(kind, item.ID)
	default:
		return models.PendingIntent{}, fmt.Errorf("unknown intent kind %d", kind)
	}

	item.PendingKey = ""
	intent := models.PendingIntent{Key: key, Kind: kind, Item: item}
	if err := s.write(ctx, intent); err != nil {
		return models.PendingIntent{}, err
	}

	s.logger.Debug().Str("key", key).Str("kind", kind.String()).Msg("intent enqueued")
	return intent, nil
}

// Requeue writes intent back under its own key.
func (s *IntentStore) Requeue(ctx context.Context, intent models.PendingIntent) error {
	if _, _, ok := models.ParseIntentKey(intent.Key); !ok {
		return fmt.Errorf("%w: %q", ErrNotIntentKey, intent.Key)
	}
	return s.write(ctx, intent)
}

// Restore writes a raw serialised payload back under key. The payload must
// decode into an item.
func (s *IntentStore) Restore(ctx context.Context, key string, payload []byte) error {
	if _, _, ok := models.ParseIntentKey(key); !ok {
		return fmt.Errorf("%w: %q", ErrNotIntentKey, key)
	}

	var item models.Item
	if err := json.Unmarshal(payload, &item); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return s.records.Put(ctx, key, payload)
}

// Remove deletes the intent under key.
func (s *IntentStore) Remove(ctx context.Context, key string) error {
	return s.records.Delete(ctx, key)
}

// Intents yields every pending intent in store key order. The kind is
// decoded once from the key. Records that cannot be decoded are yielded as
// an error wrapping [ErrDecodingRecord] together with an intent carrying
// only Key and Kind, so the caller can drop them.
func (s *IntentStore) Intents(ctx context.Context) iter.Seq2[models.PendingIntent, error] {
	return func(yield func(models.PendingIntent, error) bool) {
		for key, err := range s.records.Keys(ctx) {
			if err != nil {
				yield(models.PendingIntent{}, err)
				return
			}

			kind, _, ok := models.ParseIntentKey(key)
			if !ok {
				continue
			}

			value, err := s.records.Get(ctx, key)
			if errors.Is(err, ErrRecordNotFound) {
				continue
			}
			if err != nil {
				if !yield(models.PendingIntent{Key: key, Kind: kind}, err) {
					return
				}
				continue
			}

			intent := models.PendingIntent{Key: key, Kind: kind}
			if err = json.Unmarshal(value, &intent.Item); err != nil {
				if !yield(intent, fmt.Errorf("%w: %s: %w", ErrDecodingRecord, key, err)) {
					return
				}
				continue
			}

			if !yield(intent, nil) {
				return
			}
		}
	}
}

// Count returns the number of pending intents.
func (s *IntentStore) Count(ctx context.Context) (int, error) {
	count := 0
	for key, err := range s.records.Keys(ctx) {
		if err != nil {
			return 0, err
		}
		if models.IsIntentKey(key) {
			count++
		}
	}
	return count, nil
}

func (s *IntentStore) write(ctx context.Context, intent models.PendingIntent) error {
	payload, err := json.Marshal(intent.Item)
	if err != nil {
		return fmt.Errorf("error encoding intent %s: %w", intent.Key, err)
	}
	return s.records.Put(ctx, intent.Key, payload)
}

func (s *IntentStore) nextCreateIndex(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		next := int64(0)
		for key, err := range s.records.Keys(ctx) {
			if err != nil {
				return 0, err
			}
			kind, suffix, ok := models.ParseIntentKey(key)
			if !ok || kind != models.IntentCreate {
				continue
			}
			if n, err := strconv.ParseInt(suffix, 10, 64); err == nil && n >= next {
				next = n + 1
			}
		}
		s.next = next
		s.seeded = true
	}

	n := s.next
	s.next++
	return n, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ConflictContext describes an intent rejected during replay. It exists only
// while the conflict prompt is visible.
type ConflictContext struct {
	// Intent is the intent that failed replay. Its Key is the key the intent
	// was stored under before it was removed.
	Intent PendingIntent

	// Text is the explanation shown to the user.
	Text string

	// Payload is the serialised item needed to retry, with AcquiredAt
	// refreshed at the time of the failure.
	Payload []byte
}

// ConflictText returns the prompt text for an item that failed replay.
func ConflictText(item Item) string {
	return "Version conflict for item: " + item.Title
}

// NewConflictContext builds the context for a failed intent. acquiredAt is
// stamped on the retried payload.
func NewConflictContext(intent PendingIntent, acquiredAt int64) (ConflictContext, error) {
	item := intent.Item
	item.AcquiredAt = acquiredAt

	payload, err := json.Marshal(item)
	if err != nil {
		return ConflictContext{}, err
	}

	return ConflictContext{
		Intent:  PendingIntent{Key: intent.Key, Kind: intent.Kind, Item: item},
		Text:    ConflictText(item),
		Payload: payload,
	}, nil
}

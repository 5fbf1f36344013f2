// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// IntentKind discriminates offline mutations queued for replay.
type IntentKind int

const (
	// IntentCreate is an offline save of an item without identity.
	IntentCreate IntentKind = iota + 1
	// IntentUpdate is an offline save of an item that already has identity.
	IntentUpdate
	// IntentDelete is an offline delete.
	IntentDelete
)

// Key prefixes used to classify intent records during a store scan.
const (
	IntentCreatePrefix = "save_"
	IntentUpdatePrefix = "update_"
	IntentDeletePrefix = "remove_"
)

// String returns a human-readable kind name.
func (k IntentKind) String() string {
	switch k {
	case IntentCreate:
		return "create"
	case IntentUpdate:
		return "update"
	case IntentDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Prefix returns the store key prefix of the kind.
func (k IntentKind) Prefix() string {
	switch k {
	case IntentCreate:
		return IntentCreatePrefix
	case IntentUpdate:
		return IntentUpdatePrefix
	case IntentDelete:
		return IntentDeletePrefix
	default:
		return ""
	}
}

// PendingIntent is a durable record of an offline mutation awaiting replay.
type PendingIntent struct {
	// Key is the store key; its prefix encodes Kind.
	Key string
	// Kind is decoded once from Key when the intent is read from the store.
	Kind IntentKind
	// Item is the payload captured when the intent was queued.
	Item Item
}

// IntentKey builds a store key for kind with the given suffix: an item
// identity for update/delete, a local counter for create.
func IntentKey(kind IntentKind, suffix string) string {
	return kind.Prefix() + suffix
}

// CreateIntentKey builds the key of the n-th create intent.
func CreateIntentKey(n int64) string {
	return IntentKey(IntentCreate, fmt.Sprintf("%d", n))
}

// ParseIntentKey classifies a store key. ok is false for keys that are not
// intent records (e.g. cached items).
func ParseIntentKey(key string) (kind IntentKind, suffix string, ok bool) {
	for _, k := range []IntentKind{IntentCreate, IntentUpdate, IntentDelete} {
		if rest, found := strings.CutPrefix(key, k.Prefix()); found {
			return k, rest, true
		}
	}
	return 0, "", false
}

// IsIntentKey reports whether key belongs to a pending intent.
func IsIntentKey(key string) bool {
	_, _, ok := ParseIntentKey(key)
	return ok
}

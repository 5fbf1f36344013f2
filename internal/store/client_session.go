// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

const sessionKey = "session"

// SessionStore persists the last authenticated session on the device so the
// client can start without a round trip to the server.
type SessionStore struct {
	records RecordStore
}

// NewSessionStore constructs a [SessionStore] over records.
func NewSessionStore(records RecordStore) *SessionStore {
	return &SessionStore{records: records}
}

func (s *SessionStore) SaveSession(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}
	return s.records.Put(ctx, sessionKey, payload)
}

// LoadSession returns the stored session or [ErrLocalSessionNotFound].
func (s *SessionStore) LoadSession(ctx context.Context) (models.Session, error) {
	value, err := s.records.Get(ctx, sessionKey)
	if errors.Is(err, ErrRecordNotFound) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(value, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}
	return session, nil
}

func (s *SessionStore) ClearSession(ctx context.Context) error {
	return s.records.Delete(ctx, sessionKey)
}

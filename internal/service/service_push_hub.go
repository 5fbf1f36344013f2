// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

const pushBuffer = 32

// PushHub delivers item events to every open push channel of a user. A
// subscriber whose buffer is full misses the event.
type PushHub struct {
	mu     sync.RWMutex
	subs   map[int64]map[int]chan models.PushEvent
	nextID int

	logger *logger.Logger
}

func NewPushHub(logger *logger.Logger) *PushHub {
	return &PushHub{subs: make(map[int64]map[int]chan models.PushEvent), logger: logger}
}

// Subscribe implements [PushSubscriber]. The returned function unsubscribes
// and closes the channel; it is safe to call more than once.
func (h *PushHub) Subscribe(userID int64) (<-chan models.PushEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan models.PushEvent, pushBuffer)
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[int]chan models.PushEvent)
	}
	h.subs[userID][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[userID], id)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			close(ch)
		})
	}
}

// Publish implements [PushPublisher].
func (h *PushHub) Publish(userID int64, event models.PushEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs[userID] {
		select {
		case ch <- event:
		default:
			h.logger.Warn().Int64("user_id", userID).Int("subscriber", id).Str("type", string(event.Type)).Msg("push subscriber is full, event dropped")
		}
	}
}

// Subscribers returns the number of open channels of userID.
func (h *PushHub) Subscribers(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}

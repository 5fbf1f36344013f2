// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

// ConflictSurface holds the replay conflict currently shown to the user.
// Only one is visible at a time; a newer one replaces it. The intent behind
// it has already left the store, so the prompt is advisory: Retry puts the
// intent back for the next reconnect and Dismiss drops it.
type ConflictSurface struct {
	intents IntentQueue
	logger  *logger.Logger

	mu      sync.Mutex
	current *models.ConflictContext
	changes chan struct{}
}

// NewConflictSurface constructs an empty surface that requeues into intents.
func NewConflictSurface(intents IntentQueue, log *logger.Logger) *ConflictSurface {
	return &ConflictSurface{
		intents: intents,
		logger:  log.Component("conflicts"),
		changes: make(chan struct{}, 1),
	}
}

// Present implements [ConflictPresenter].
func (c *ConflictSurface) Present(ctx context.Context, conflict models.ConflictContext) {
	c.mu.Lock()
	if c.current != nil {
		c.logger.Debug().Str("replaced", c.current.Intent.Key).Msg("conflict prompt replaced")
	}
	c.current = &conflict
	c.mu.Unlock()

	c.logger.Info().Str("key", conflict.Intent.Key).Str("text", conflict.Text).Msg("conflict presented")
	c.notify()
}

// Current returns the visible conflict, if any.
func (c *ConflictSurface) Current() (models.ConflictContext, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return models.ConflictContext{}, false
	}
	return *c.current, true
}

// Dismiss closes the prompt. The intent stays discarded.
func (c *ConflictSurface) Dismiss() {
	c.mu.Lock()
	dismissed := c.current
	c.current = nil
	c.mu.Unlock()

	if dismissed != nil {
		c.logger.Info().Str("key", dismissed.Intent.Key).Msg("conflict dismissed")
		c.notify()
	}
}

// Retry re-inserts the visible conflict's intent under its original key
// with the stored payload and closes the prompt. The prompt stays open if
// the write fails.
func (c *ConflictSurface) Retry(ctx context.Context) error {
	c.mu.Lock()
	conflict := c.current
	c.mu.Unlock()

	if conflict == nil {
		return ErrNoConflict
	}

	if err := c.intents.Restore(ctx, conflict.Intent.Key, conflict.Payload); err != nil {
		return fmt.Errorf("requeue %s: %w", conflict.Intent.Key, err)
	}

	c.mu.Lock()
	// a newer conflict may have arrived during the write
	if c.current == conflict {
		c.current = nil
	}
	c.mu.Unlock()

	c.logger.Info().Str("key", conflict.Intent.Key).Msg("conflict requeued")
	c.notify()
	return nil
}

// Changes signals after every Present, Dismiss or Retry. Signals coalesce.
func (c *ConflictSurface) Changes() <-chan struct{} {
	return c.changes
}

func (c *ConflictSurface) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

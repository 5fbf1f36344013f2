// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

// Replay drains the intent queue against the server.
//
// Passes never overlap: a call made while a pass is running only schedules
// one more pass after it. Each intent is removed from the store before its
// remote call. A failed call is handed to the conflict presenter and the
// pass continues; after a pass with a failure the fetch runs once more.
func (e *Engine) Replay(ctx context.Context) error {
	var (
		session models.Session
		start   bool
	)
	if err := e.exec(ctx, func() {
		session, start = e.acquireReplay()
	}); err != nil || !start {
		return err
	}
	return e.replay(ctx, session)
}

// startReplay runs on the loop. It takes the latch and starts a pass in the
// background on the run context.
func (e *Engine) startReplay() {
	session, start := e.acquireReplay()
	if !start {
		return
	}

	ctx := e.runCtx
	go func() {
		if err := e.replay(ctx, session); err != nil {
			e.logger.Warn().Err(err).Msg("replay aborted")
		}
	}()
}

// acquireReplay runs on the loop. It reports whether the caller now holds
// the latch; while a pass runs it only asks for one more.
func (e *Engine) acquireReplay() (models.Session, bool) {
	if e.state.Session.IsZero() {
		return models.Session{}, false
	}
	if e.replayBusy {
		e.replayAgain = true
		return models.Session{}, false
	}
	e.replayBusy = true
	return e.state.Session, true
}

// replay runs passes until no further one was requested and releases the
// latch.
func (e *Engine) replay(ctx context.Context, session models.Session) error {
	// the latch must be released even if ctx is cancelled mid-pass
	release := context.WithoutCancel(ctx)
	for {
		failed := e.replayPass(ctx, session)

		again := false
		if err := e.exec(release, func() {
			if failed && e.state.Session == session {
				e.startFetch()
			}
			if e.replayAgain && !e.state.Session.IsZero() {
				e.replayAgain, again, session = false, true, e.state.Session
				return
			}
			e.replayAgain, e.replayBusy = false, false
		}); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// replayPass runs every queued intent once and reports whether any failed.
func (e *Engine) replayPass(ctx context.Context, session models.Session) bool {
	failed := false
	replayed := 0

	for intent, err := range e.deps.Intents.Intents(ctx) {
		if err != nil {
			if intent.Key == "" {
				e.logger.Error().Err(err).Msg("enumerating intents failed")
				return true
			}
			e.logger.Error().Err(err).Str("key", intent.Key).Msg("dropping unreadable intent")
			if rmErr := e.deps.Intents.Remove(ctx, intent.Key); rmErr != nil {
				e.logger.Error().Err(rmErr).Str("key", intent.Key).Msg("removing unreadable intent failed")
			}
			continue
		}

		// removed first so a crash mid-call cannot apply it twice
		if err = e.deps.Intents.Remove(ctx, intent.Key); err != nil {
			e.logger.Error().Err(err).Str("key", intent.Key).Msg("removing intent before replay failed")
			failed = true
			continue
		}

		replayed++
		if err = e.replayIntent(ctx, session, intent); err != nil {
			failed = true
			e.surfaceConflict(ctx, intent, err)
		}
	}

	e.logger.Info().Int("replayed", replayed).Bool("failed", failed).Msg("replay pass finished")
	return failed
}

func (e *Engine) replayIntent(ctx context.Context, session models.Session, intent models.PendingIntent) error {
	switch intent.Kind {
	case models.IntentCreate:
		created, err := e.deps.Adapter.Create(ctx, intent.Item)
		if err != nil {
			return err
		}
		created.AcquiredAt = e.now()
		e.applyReplayed(ctx, session, func() {
			replacePlaceholder(&e.state, intent.Key, created)
		})
		e.cache(ctx, session, created)

	case models.IntentUpdate:
		updated, err := e.deps.Adapter.Update(ctx, intent.Item)
		if err != nil {
			return err
		}
		updated.AcquiredAt = e.now()
		e.applyReplayed(ctx, session, func() {
			upsertItem(&e.state, updated)
		})
		e.cache(ctx, session, updated)

	case models.IntentDelete:
		if err := e.deps.Adapter.Delete(ctx, intent.Item); err != nil {
			return err
		}
		e.applyReplayed(ctx, session, func() {
			removeItem(&e.state, intent.Item)
		})
		e.evict(ctx, session, intent.Item.ID)

	default:
		return fmt.Errorf("%w: %d", ErrUnknownIntentKind, intent.Kind)
	}

	e.logger.Debug().Str("key", intent.Key).Str("kind", intent.Kind.String()).Msg("intent replayed")
	return nil
}

func (e *Engine) applyReplayed(ctx context.Context, session models.Session, mutate func()) {
	if err := e.exec(ctx, func() {
		if e.state.Session == session {
			mutate()
		}
	}); err != nil {
		e.logger.Warn().Err(err).Msg("applying replayed intent failed")
	}
}

func (e *Engine) surfaceConflict(ctx context.Context, intent models.PendingIntent, cause error) {
	conflict, err := models.NewConflictContext(intent, e.now())
	if err != nil {
		e.logger.Error().Err(err).Str("key", intent.Key).Msg("building conflict context failed")
		return
	}

	e.logger.Warn().Err(cause).Str("key", intent.Key).Str("title", intent.Item.Title).Msg("replay conflict")
	e.deps.Conflicts.Present(ctx, conflict)
}

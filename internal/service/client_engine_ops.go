// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-coffee-lobby/internal/network"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

// SetSession resets the state for session and starts a fetch and the push
// channel. A fetch still running for the previous session is cancelled and
// its result is dropped. Intents left from an earlier run are replayed at
// once when the server is already reachable. The zero session signs out.
func (e *Engine) SetSession(ctx context.Context, session models.Session) error {
	e.deps.Adapter.SetToken(session.Token)

	return e.exec(ctx, func() {
		if e.fetchCancel != nil {
			e.fetchCancel()
			e.fetchCancel = nil
		}
		e.closePush()

		e.state = models.ItemsState{Session: session}
		if session.IsZero() {
			e.logger.Info().Msg("session cleared")
			return
		}

		e.logger.Info().Int64("user_id", session.UserID).Msg("session started")
		e.startFetch()
		e.openPush()
		if e.deps.Monitor.Status() == network.Connected {
			e.startReplay()
		}
	})
}

// Refresh re-runs the fetch for the current session.
func (e *Engine) Refresh(ctx context.Context) error {
	return e.exec(ctx, func() {
		if !e.state.Session.IsZero() {
			e.startFetch()
		}
	})
}

// startFetch runs on the loop. It cancels any running fetch and lists every
// item of the current session.
func (e *Engine) startFetch() {
	if e.fetchCancel != nil {
		e.fetchCancel()
	}
	fetchCtx, cancel := context.WithCancel(e.runCtx)
	e.fetchCancel = cancel

	e.state.Fetch = models.StatusInFlight
	e.state.FetchingError = nil

	go e.fetch(fetchCtx, e.state.Session)
}

func (e *Engine) fetch(fetchCtx context.Context, session models.Session) {
	items, err := e.deps.Adapter.List(fetchCtx, session.UserID)

	var cached []models.Item
	if err != nil {
		var cacheErr error
		if cached, cacheErr = e.deps.Cache.CachedItems(fetchCtx, session.UserID); cacheErr != nil {
			e.logger.Warn().Err(cacheErr).Msg("reading item cache failed")
		}
	}

	stamped := stampAcquired(items, e.now())
	applied := false
	execErr := e.exec(fetchCtx, func() {
		// the only point where a superseded fetch is discarded
		if fetchCtx.Err() != nil {
			return
		}
		applied = true

		if err != nil {
			e.state.Fetch = models.StatusFailed
			e.state.FetchingError = err
			if len(e.state.Items) == 0 && len(cached) > 0 {
				e.state.Items = newestFirst(cached)
			}
			return
		}

		// the loop gets its own copy; stamped is read below off the loop
		e.state.Items = slices.Clone(stamped)
		e.state.Fetch = models.StatusSucceeded
	})

	switch {
	case execErr != nil || !applied:
		e.logger.Debug().Int64("user_id", session.UserID).Msg("stale fetch dropped")
	case err != nil:
		e.logger.Warn().Err(err).Int("cached", len(cached)).Msg("fetch failed")
	default:
		e.logger.Debug().Int("items", len(stamped)).Msg("fetch succeeded")
		e.cache(fetchCtx, session, stamped...)
	}
}

// SaveItem creates or updates item. While connected the server is called
// and the collection changes only on success. While disconnected an intent
// is queued and the item is upserted at once.
func (e *Engine) SaveItem(ctx context.Context, item models.Item) error {
	session, err := e.begin(ctx, saveOperation)
	if err != nil {
		return err
	}
	if session.IsZero() {
		return e.finish(ctx, session, saveOperation, ErrNoSession)
	}

	if e.deps.Monitor.Status() != network.Connected {
		return e.saveOffline(ctx, session, item)
	}

	var saved models.Item
	if item.HasIdentity() {
		saved, err = e.deps.Adapter.Update(ctx, item)
	} else {
		saved, err = e.deps.Adapter.Create(ctx, item)
	}
	if err != nil {
		e.logger.Warn().Err(err).Str("title", item.Title).Msg("save failed")
		return e.finish(ctx, session, saveOperation, err)
	}

	saved.AcquiredAt = e.now()
	saved.PendingKey = ""
	if err = e.apply(ctx, session, saveOperation, func() {
		if item.PendingKey != "" {
			replacePlaceholder(&e.state, item.PendingKey, saved)
			return
		}
		upsertItem(&e.state, saved)
	}); err != nil {
		return err
	}

	e.cache(ctx, session, saved)
	return nil
}

func (e *Engine) saveOffline(ctx context.Context, session models.Session, item models.Item) error {
	kind := models.IntentCreate
	if item.HasIdentity() {
		kind = models.IntentUpdate
	}

	intent, err := e.deps.Intents.Enqueue(ctx, kind, item.ForRemote())
	if err != nil {
		e.logger.Error().Err(err).Str("kind", kind.String()).Msg("queueing offline save failed")
		return e.finish(ctx, session, saveOperation, err)
	}

	optimistic := item
	if kind == models.IntentCreate {
		optimistic.PendingKey = intent.Key
	}

	e.logger.Info().Str("key", intent.Key).Msg("saved offline")
	return e.apply(ctx, session, saveOperation, func() {
		// an edited placeholder keeps its row under the new key
		if item.PendingKey != "" {
			replacePlaceholder(&e.state, item.PendingKey, optimistic)
			return
		}
		upsertItem(&e.state, optimistic)
	})
}

// DeleteItem deletes item. While connected the item leaves the collection
// once the server confirms. While disconnected a remove intent is queued and
// the collection is left as it is until replay succeeds.
func (e *Engine) DeleteItem(ctx context.Context, item models.Item) error {
	session, err := e.begin(ctx, deleteOperation)
	if err != nil {
		return err
	}
	if session.IsZero() {
		return e.finish(ctx, session, deleteOperation, ErrNoSession)
	}
	if !item.HasIdentity() {
		return e.finish(ctx, session, deleteOperation, ErrItemNotSaved)
	}

	if e.deps.Monitor.Status() != network.Connected {
		intent, err := e.deps.Intents.Enqueue(ctx, models.IntentDelete, item.ForRemote())
		if err != nil {
			e.logger.Error().Err(err).Str("id", item.ID).Msg("queueing offline delete failed")
			return e.finish(ctx, session, deleteOperation, err)
		}
		e.logger.Info().Str("key", intent.Key).Msg("deleted offline")
		return e.finish(ctx, session, deleteOperation, nil)
	}

	if err = e.deps.Adapter.Delete(ctx, item); err != nil {
		e.logger.Warn().Err(err).Str("id", item.ID).Msg("delete failed")
		return e.finish(ctx, session, deleteOperation, err)
	}

	if err = e.apply(ctx, session, deleteOperation, func() {
		removeItem(&e.state, item)
	}); err != nil {
		return err
	}

	e.evict(ctx, session, item.ID)
	return nil
}

type operation int

const (
	saveOperation operation = iota
	deleteOperation
)

func (e *Engine) status(op operation) (*models.OperationStatus, *error) {
	if op == deleteOperation {
		return &e.state.Delete, &e.state.DeletingError
	}
	return &e.state.Save, &e.state.SavingError
}

// begin marks op in flight and returns the session it runs for.
func (e *Engine) begin(ctx context.Context, op operation) (models.Session, error) {
	var session models.Session
	err := e.exec(ctx, func() {
		session = e.state.Session
		status, opErr := e.status(op)
		*status, *opErr = models.StatusInFlight, nil
	})
	return session, err
}

// finish settles op with err and returns err. A result for a session that
// is no longer current is dropped.
func (e *Engine) finish(ctx context.Context, session models.Session, op operation, err error) error {
	if execErr := e.exec(ctx, func() {
		if e.state.Session != session {
			return
		}
		status, opErr := e.status(op)
		if err != nil {
			*status, *opErr = models.StatusFailed, err
			return
		}
		*status, *opErr = models.StatusSucceeded, nil
	}); execErr != nil {
		return execErr
	}
	return err
}

// apply runs mutate and marks op succeeded, unless the session changed.
func (e *Engine) apply(ctx context.Context, session models.Session, op operation, mutate func()) error {
	return e.exec(ctx, func() {
		if e.state.Session != session {
			return
		}
		mutate()
		status, opErr := e.status(op)
		*status, *opErr = models.StatusSucceeded, nil
	})
}

func (e *Engine) cache(ctx context.Context, session models.Session, items ...models.Item) {
	if err := e.deps.Cache.CacheItems(ctx, session.UserID, items...); err != nil {
		e.logger.Warn().Err(err).Int("items", len(items)).Msg("caching items failed")
	}
}

func (e *Engine) evict(ctx context.Context, session models.Session, id string) {
	if err := e.deps.Cache.Evict(ctx, session.UserID, id); err != nil {
		e.logger.Warn().Err(err).Str("id", id).Msg("evicting cached item failed")
	}
}

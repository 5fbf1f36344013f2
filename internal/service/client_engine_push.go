// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-coffee-lobby/models"
)

// openPush runs on the loop. The dial happens off the loop; pushGen tells
// the dialer whether the channel it opened is still wanted.
func (e *Engine) openPush() {
	e.pushGen++
	gen, session, ctx := e.pushGen, e.state.Session, e.runCtx

	go func() {
		closeFn, err := e.deps.Adapter.OpenPushChannel(ctx, session.UserID, func(event models.PushEvent) {
			e.mergePush(ctx, gen, session, event)
		})
		if err != nil {
			e.logger.Warn().Err(err).Msg("opening push channel failed")
			return
		}

		kept := false
		_ = e.exec(ctx, func() {
			if gen != e.pushGen || e.pushClose != nil {
				return
			}
			e.pushClose, kept = closeFn, true
		})
		if !kept {
			closeFn()
		}
	}()
}

// closePush runs on the loop.
func (e *Engine) closePush() {
	e.pushGen++
	if e.pushClose != nil {
		e.pushClose()
		e.pushClose = nil
	}
}

// mergePush upserts created and updated items. Deleted events are not
// merged.
func (e *Engine) mergePush(ctx context.Context, gen int, session models.Session, event models.PushEvent) {
	if !event.IsUpsert() {
		e.logger.Debug().Str("type", string(event.Type)).Str("id", event.Payload.ID).Msg("push event ignored")
		return
	}

	item := event.Payload
	item.AcquiredAt = e.now()
	item.PendingKey = ""

	applied := false
	_ = e.exec(ctx, func() {
		if gen != e.pushGen {
			return
		}
		upsertItem(&e.state, item)
		applied = true
	})

	if applied {
		e.cache(ctx, session, item)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

const (
	pushPath         = "/ws"
	closeWriteWindow = time.Second
)

// OpenPushChannel implements [ServerAdapter]. It dials the websocket at /ws,
// sends the authorization frame and starts a reader goroutine. owner is
// implied by the token.
func (h *httpServerAdapter) OpenPushChannel(ctx context.Context, owner int64, onEvent func(models.PushEvent)) (func(), error) {
	dialer := websocket.Dialer{HandshakeTimeout: h.timeout}

	conn, _, err := dialer.DialContext(ctx, pushURL(h.baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("dial push channel: %w", err)
	}

	if err = conn.WriteJSON(models.NewPushAuthorizationMessage(h.Token())); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("send push authorization: %w", err)
	}

	ch := &pushChannel{conn: conn, onEvent: onEvent, logger: h.logger}
	go ch.read()

	h.logger.Info().Int64("owner", owner).Msg("push channel opened")
	return ch.close, nil
}

type pushChannel struct {
	conn    *websocket.Conn
	onEvent func(models.PushEvent)

	closed atomic.Bool
	once   sync.Once

	logger *logger.Logger
}

func (p *pushChannel) read() {
	defer p.close()

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if !p.closed.Load() && websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				p.logger.Warn().Err(err).Msg("push channel dropped")
			}
			return
		}

		var event models.PushEvent
		if err = json.Unmarshal(data, &event); err != nil {
			p.logger.Warn().Err(err).Msg("undecodable push message")
			continue
		}

		// a message may be in flight when close is called
		if p.closed.Load() {
			return
		}
		p.onEvent(event)
	}
}

func (p *pushChannel) close() {
	p.once.Do(func() {
		p.closed.Store(true)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = p.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWindow))
		_ = p.conn.Close()
		p.logger.Debug().Msg("push channel closed")
	})
}

func pushURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://") + pushPath
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://") + pushPath
	default:
		return baseURL + pushPath
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-coffee-lobby/internal/app"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

const (
	pushAuthTimeout  = 10 * time.Second
	pushWriteTimeout = 10 * time.Second
)

// push serves the websocket at /ws. The first frame must be an
// authorization message carrying the bearer token; after that the server
// only writes item events of the token's user.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	userID, ok := h.authorizePush(r, conn)
	if !ok {
		return
	}

	events, unsubscribe := h.services.PushHub.Subscribe(userID)
	defer unsubscribe()
	log.Info().Int64("user_id", userID).Msg("push channel subscribed")

	// the client never writes after authorizing; reading detects its close
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			log.Info().Int64("user_id", userID).Msg("push channel closed by client")
			return
		case event, open := <-events:
			if !open {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(pushWriteTimeout))
			if err = conn.WriteJSON(event); err != nil {
				log.Warn().Err(err).Int64("user_id", userID).Msg("writing push event failed")
				return
			}
		}
	}
}

func (h *Handler) authorizePush(r *http.Request, conn *websocket.Conn) (int64, bool) {
	log := logger.FromRequest(r)

	_ = conn.SetReadDeadline(time.Now().Add(pushAuthTimeout))
	var msg models.PushAuthorizationMessage
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != models.PushAuthorization {
		log.Warn().Err(err).Str("type", string(msg.Type)).Msg("push channel without authorization frame")
		rejectPush(conn, app.MsgInvalidDataProvided)
		return 0, false
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), msg.Payload.Token)
	if err != nil {
		log.Warn().Err(err).Msg("push channel token rejected")
		rejectPush(conn, app.MsgTokenIsExpiredOrInvalid)
		return 0, false
	}

	_ = conn.SetReadDeadline(time.Time{})
	return token.UserID, true
}

func rejectPush(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-coffee-lobby/internal/app"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses maps service errors to the status and body the client
// adapter decodes. The bodies are app.Msg* constants.
var errorResponses = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrNoUserID:                {http.StatusBadRequest, app.MsgNoUserIDProvided},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrLoginAlreadyExists:      {http.StatusConflict, app.MsgLoginAlreadyExists},
	service.ErrVersionConflict:         {http.StatusConflict, app.MsgVersionConflict},
	service.ErrItemNotFound:            {http.StatusNotFound, app.MsgItemNotFound},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponses {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and writes the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)
	log := logger.FromRequest(r)

	event := log.Warn()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", resp.status).Msg(msg)

	http.Error(w, resp.message, resp.status)
}

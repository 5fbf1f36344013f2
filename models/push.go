// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PushEventKind is the type of a push-channel message.
type PushEventKind string

const (
	PushCreated PushEventKind = "created"
	PushUpdated PushEventKind = "updated"
	PushDeleted PushEventKind = "deleted"

	// PushAuthorization is the first frame a client sends after dialing the
	// push channel.
	PushAuthorization PushEventKind = "authorization"
)

// PushEvent is a single server-to-client notification about a remote
// mutation.
type PushEvent struct {
	Type    PushEventKind `json:"type"`
	Payload Item          `json:"payload"`
}

// IsUpsert reports whether the event carries a created or updated item.
func (e PushEvent) IsUpsert() bool {
	return e.Type == PushCreated || e.Type == PushUpdated
}

// PushAuthorizationMessage is sent by the client to authenticate the push
// channel.
type PushAuthorizationMessage struct {
	Type    PushEventKind `json:"type"`
	Payload struct {
		Token string `json:"token"`
	} `json:"payload"`
}

// NewPushAuthorizationMessage builds the authorization frame for token.
func NewPushAuthorizationMessage(token string) PushAuthorizationMessage {
	msg := PushAuthorizationMessage{Type: PushAuthorization}
	msg.Payload.Token = token
	return msg
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coffee-lobby/internal/adapter"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/store"
	"github.com/MKhiriev/go-coffee-lobby/internal/validators"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	sessions  SessionKeeper
	engine    SessionSetter
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientAuthService wires the client auth flow.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions SessionKeeper, engine SessionSetter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		sessions:  sessions,
		engine:    engine,
		validator: validators.NewCredentialsValidator(),
		logger:    log.Component("auth"),
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.start(ctx, token.Session())
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.start(ctx, token.Session())
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("loading saved session: %w", err)
	}
	if session.IsZero() {
		return models.Session{}, ErrNoSession
	}

	if err = a.engine.SetSession(ctx, session); err != nil {
		return models.Session{}, err
	}

	a.logger.Info().Int64("user_id", session.UserID).Msg("session restored")
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing saved session: %w", err)
	}
	return a.engine.SetSession(ctx, models.Session{})
}

func (a *clientAuthService) start(ctx context.Context, session models.Session) (models.Session, error) {
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Warn().Err(err).Msg("saving session failed")
	}
	if err := a.engine.SetSession(ctx, session); err != nil {
		return models.Session{}, err
	}

	a.logger.Info().Int64("user_id", session.UserID).Msg("signed in")
	return session, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/service"
	"github.com/MKhiriev/go-coffee-lobby/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNothingToRun
	}

	return &App{
		services: services,
		ui:       ui,
		workers: workers.NewWorkers(logger).
			Add("connectivity", services.Prober).
			Add("engine", services.Engine),
		logger: logger,
	}, nil
}

// Run starts the prober and the engine, restores the saved session and
// shows the UI. Everything stops when the UI exits or a stop signal
// arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	workersCtx, stopWorkers := context.WithCancel(ctx)

	g.Go(func() error {
		return a.workers.Run(workersCtx)
	})
	g.Go(func() error {
		defer stopWorkers()
		return a.ui.Run(ctx, a.restoreSession(ctx))
	})

	err := g.Wait()
	if errors.Is(err, ErrUserQuit) {
		return nil
	}
	return err
}

// restoreSession reports whether a saved session was found and handed to
// the engine.
func (a *App) restoreSession(ctx context.Context) bool {
	session, err := a.services.AuthService.Restore(ctx)
	switch {
	case errors.Is(err, service.ErrNoSession):
		a.logger.Info().Msg("no saved session")
		return false
	case err != nil:
		a.logger.Err(err).Msg("restoring session failed")
		return false
	}

	a.logger.Info().Int64("user_id", session.UserID).Msg("session restored")
	return true
}

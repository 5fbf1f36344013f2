// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-coffee-lobby/internal/config"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/mock"
	"github.com/MKhiriev/go-coffee-lobby/internal/service"
	"github.com/MKhiriev/go-coffee-lobby/internal/store"
	"github.com/MKhiriev/go-coffee-lobby/internal/tui"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

type uiFunc func(ctx context.Context, signedIn bool) error

func (f uiFunc) Run(ctx context.Context, signedIn bool) error { return f(ctx, signedIn) }

func newTestServices(t *testing.T) (*service.ClientServices, *mock.MockServerAdapter, *store.ClientStorages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().Ping(gomock.Any()).Return(errors.New("offline")).AnyTimes()

	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: store.MemoryDSN}}, logger.Nop())
	require.NoError(t, err)

	cfg := &config.ClientConfig{
		Workers: config.ClientWorkers{ConnectivityInterval: time.Hour},
		Engine:  config.ClientEngine{PageSize: 15},
	}
	return service.NewClientServices(storages, serverAdapter, cfg, logger.Nop()), serverAdapter, storages
}

func TestNewApp_RequiresServicesAndUI(t *testing.T) {
	_, err := NewApp(nil, uiFunc(nil), logger.Nop())
	assert.ErrorIs(t, err, ErrNothingToRun)
}

func TestApp_UserQuitStopsWorkers(t *testing.T) {
	services, _, _ := newTestServices(t)

	var signedIn bool
	app, err := NewApp(services, uiFunc(func(ctx context.Context, s bool) error {
		signedIn = s
		return tui.ErrUserQuit
	}), logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.run(context.Background()) }()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.False(t, signedIn)
}

func TestApp_RestoresSavedSession(t *testing.T) {
	services, serverAdapter, storages := newTestServices(t)
	session := models.Session{Token: "signed", UserID: 7}
	require.NoError(t, storages.Sessions.SaveSession(context.Background(), session))

	serverAdapter.EXPECT().SetToken("signed").AnyTimes()
	serverAdapter.EXPECT().OpenPushChannel(gomock.Any(), int64(7), gomock.Any()).Return(nil, errors.New("offline")).AnyTimes()
	serverAdapter.EXPECT().List(gomock.Any(), int64(7)).Return(nil, errors.New("offline")).AnyTimes()

	var signedIn bool
	app, err := NewApp(services, uiFunc(func(ctx context.Context, s bool) error {
		signedIn = s
		return nil
	}), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.True(t, signedIn)
	assert.Equal(t, session, services.Engine.Snapshot().Session)
}

func TestApp_UIErrorIsReturned(t *testing.T) {
	services, _, _ := newTestServices(t)
	boom := errors.New("terminal gone")

	app, err := NewApp(services, uiFunc(func(context.Context, bool) error { return boom }), logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.run(context.Background()), boom)
}

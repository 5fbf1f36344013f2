// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-coffee-lobby/internal/config"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/mock"
	"github.com/MKhiriev/go-coffee-lobby/internal/store"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "coffee-lobby-test",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	return NewAuthService(repo, testAppConfig, logger.Nop()), repo
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("stores bcrypt hash", func(t *testing.T) {
		svc, repo := newTestAuthService(t)

		repo.EXPECT().CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
				assert.Equal(t, "barista", user.Login)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("crema")))
				user.UserID = 5
				return user, nil
			})

		registered, err := svc.RegisterUser(ctx, models.User{Login: "barista", Password: "crema"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), registered.UserID)
	})

	t.Run("login taken", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

		_, err := svc.RegisterUser(ctx, models.User{Login: "barista", Password: "crema"})
		assert.ErrorIs(t, err, ErrLoginAlreadyExists)
	})

	t.Run("invalid data", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.RegisterUser(ctx, models.User{Login: "barista"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, errors.New("db down"))

		_, err := svc.RegisterUser(ctx, models.User{Login: "barista", Password: "crema"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("crema"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 9, Login: "barista", Password: string(hash)}

	t.Run("valid password", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(ctx, "barista").Return(stored, nil)

		user, err := svc.Login(ctx, models.User{Login: "barista", Password: "crema"})
		require.NoError(t, err)
		assert.Equal(t, int64(9), user.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(ctx, "barista").Return(stored, nil)

		_, err := svc.Login(ctx, models.User{Login: "barista", Password: "lungo"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown login", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(ctx, "nobody").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(ctx, models.User{Login: "nobody", Password: "crema"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}

func TestAuthService_Tokens(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	other := NewAuthService(store.NewMemoryUserRepository(), config.App{
		TokenSignKey:  testAppConfig.TokenSignKey,
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())
	_, err = other.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

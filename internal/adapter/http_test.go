// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-lobby/internal/config"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/utils"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func signedToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("lobby", userID, time.Hour, "secret")
	require.NoError(t, err)
	return token.SignedString
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host only", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", raw: "https://lobby.example/ ", want: "https://lobby.example"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	token := signedToken(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body.Login)
		assert.Equal(t, "pw", body.Password)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, token, got.SignedString)
	assert.Equal(t, token, a.Token())
}

func TestRegister_Success(t *testing.T) {
	token := signedToken(t, 3)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.User{Login: "bob", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
	assert.Equal(t, token, a.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		header string
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "conflict", status: http.StatusConflict, want: ErrVersionConflict},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "missing token", status: http.StatusOK, want: utils.ErrInvalidAuthorizationHdr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.User{Login: "alice"})
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, a.Token())
		})
	}
}

// ── items ───────────────────────────────────────────────────────────────────

func TestCreate_StripsClientFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/item", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.NotContains(t, raw, "acquiredAt")
		assert.NotContains(t, raw, "pendingKey")
		assert.Equal(t, "Flat white", raw["title"])

		_, _ = utils.WriteJSON(w, models.Item{ID: "id-1", Title: "Flat white", Version: 1}, http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tkn ")

	got, err := a.Create(context.Background(), models.Item{Title: "Flat white", AcquiredAt: 99, PendingKey: "save_0"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, int64(1), got.Version)
}

func TestUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/item/id-1", r.URL.Path)
			_, _ = utils.WriteJSON(w, models.Item{ID: "id-1", Title: "New", Version: 3}, http.StatusOK)
		}))
		defer srv.Close()

		got, err := newTestAdapter(t, srv.URL).Update(context.Background(), models.Item{ID: "id-1", Title: "New", Version: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Version)
	})

	t.Run("conflict", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "stale version", http.StatusConflict)
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).Update(context.Background(), models.Item{ID: "id-1"})
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("missing identity", func(t *testing.T) {
		a := newTestAdapter(t, "http://127.0.0.1:1")
		_, err := a.Update(context.Background(), models.Item{Title: "x"})
		assert.ErrorIs(t, err, ErrMissingIdentity)
	})
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/item/gone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.Delete(context.Background(), models.Item{ID: "id-1"}))
	assert.ErrorIs(t, a.Delete(context.Background(), models.Item{ID: "gone"}), ErrNotFound)
	assert.ErrorIs(t, a.Delete(context.Background(), models.Item{}), ErrMissingIdentity)
}

func TestList(t *testing.T) {
	t.Run("empty body is an empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			_, _ = utils.WriteJSON(w, nil, http.StatusOK)
		}))
		defer srv.Close()

		items, err := newTestAdapter(t, srv.URL).List(context.Background(), 1)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).List(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInternalServerError)
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := newTestAdapter(t, "http://127.0.0.1:1").List(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	a := newTestAdapter(t, srv.URL)

	assert.NoError(t, a.Ping(context.Background()))

	srv.Close()
	assert.Error(t, a.Ping(context.Background()))
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Ping(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

func TestMapHTTPError_KeepsServerMessage(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
	}{
		{http.StatusBadRequest, "invalid data provided", ErrBadRequest},
		{http.StatusUnauthorized, "invalid login/password", ErrUnauthorized},
		{http.StatusForbidden, "", ErrForbidden},
		{http.StatusNotFound, "item not found", ErrNotFound},
		{http.StatusConflict, "login already exists", ErrVersionConflict},
		{http.StatusInternalServerError, "boom", ErrInternalServerError},
		{http.StatusBadGateway, "", ErrBadGateway},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body + "\n"))
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Ping(context.Background())
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want.Error()+": "+tt.body, err.Error())
		})
	}
}

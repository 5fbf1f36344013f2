// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9090"}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("WORKERS_CONNECTIVITY_INTERVAL", "3s")

	b := newTestBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 3*time.Second, b.configs[0].Workers.ConnectivityInterval)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("ENGINE_PAGE_SIZE", "many")

	b := newTestBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newTestBuilder("-unknown").withFlags()
	assert.Error(t, b.err)
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/does/not/exist.json"})
	b.withFile()

	assert.Error(t, b.err)
}

func TestFullChain_FileOverridesFlagsAndEnv(t *testing.T) {
	path := writeTempConfig(t, "cfg.yaml", "server:\n  http_address: \"localhost:7000\"\n")
	t.Setenv("SERVER_ADDRESS", "localhost:6000")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	cfg, err := newTestBuilder("-a", "localhost:6500", "-c", path).
		withEnv().
		withFlags().
		withFile().
		build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, path, cfg.ConfigFilePath)
}

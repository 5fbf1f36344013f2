// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := NewClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://localhost:8080"},
		Storage: Storage{DB: DB{DSN: "coffee.db"}},
	})

	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultConnectivityInterval, cfg.Workers.ConnectivityInterval)
	assert.Equal(t, defaultPageSize, cfg.Engine.PageSize)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "coffee.db"}},
			Workers: ClientWorkers{ConnectivityInterval: time.Second},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "address without scheme", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "localhost:8080" }, want: ErrInvalidAdapterConfigs},
		{name: "zero interval", mutate: func(c *ClientConfig) { c.Workers.ConnectivityInterval = 0 }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		return NewServerConfig(&StructuredConfig{
			App:     App{TokenSignKey: "k", TokenIssuer: "lobby"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			Server:  Server{HTTPAddress: "localhost:8080"},
		})
	}

	c := valid()
	assert.NoError(t, c.validate())
	assert.Equal(t, defaultTokenDuration, c.App.TokenDuration)

	c = valid()
	c.Storage.DB.DSN = ""
	assert.ErrorIs(t, c.validate(), ErrInvalidStorageConfigs)

	c = valid()
	c.Server.HTTPAddress = ""
	assert.ErrorIs(t, c.validate(), ErrInvalidServerConfigs)

	c = valid()
	c.App.TokenSignKey = ""
	assert.ErrorIs(t, c.validate(), ErrInvalidAppConfigs)
}

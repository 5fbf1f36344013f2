// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names join the
// envPrefix and env tags of [StructuredConfig], e.g. ADAPTER_ADDRESS or
// ENGINE_PAGE_SIZE.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom reads environment instead of the process environment when it
// is non-nil. Every malformed variable is reported, not only the first.
func parseEnvFrom(cfg *StructuredConfig, environment map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environment})
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) {
		err = errors.Join(aggregate.Errors...)
	}
	return fmt.Errorf("%w: error getting env configs: %w", ErrInvalidEnv, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
)

type Workers struct {
	workers map[string]Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{
		workers: make(map[string]Worker),
		logger:  logger.Component("workers"),
	}
}

// Add registers a worker under name. Adding after Run has no effect on the
// running group.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.workers[name] = worker
	return w
}

// Run starts every worker and blocks until all of them return. The first
// failure cancels the others and is returned wrapped with the worker name.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for name, worker := range w.workers {
		g.Go(func() error {
			w.logger.Debug().Str("worker", name).Msg("worker started")
			defer w.logger.Debug().Str("worker", name).Msg("worker stopped")

			if err := worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("worker", name).Msg("worker failed")
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

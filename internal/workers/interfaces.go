// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background loops (the connectivity
// prober and the reconciliation engine) as one group that stops together.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done or the loop
// fails; a non-nil error cancels the rest of the group.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

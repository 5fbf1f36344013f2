// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
)

const defaultProbeInterval = 5 * time.Second

// Pinger checks that the server answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Prober is a [Monitor] that polls a [Pinger]. It starts disconnected, so the
// first successful probe is a transition to connected.
type Prober struct {
	*broadcaster

	pinger   Pinger
	interval time.Duration
	timeout  time.Duration

	// forcedOffline pins the status to disconnected while set.
	forcedOffline atomic.Bool

	logger *logger.Logger
}

// NewProber builds a prober that pings every interval. Each ping is bounded
// by the interval.
func NewProber(pinger Pinger, interval time.Duration, log *logger.Logger) *Prober {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &Prober{
		broadcaster: newBroadcaster(Disconnected),
		pinger:      pinger,
		interval:    interval,
		timeout:     interval,
		logger:      log.Component("connectivity"),
	}
}

// Run probes immediately and then on every tick until ctx is done.
func (p *Prober) Run(ctx context.Context) error {
	p.Probe(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			p.Probe(ctx)
		}
	}
}

// Probe pings once and publishes the result.
func (p *Prober) Probe(ctx context.Context) Status {
	status := Disconnected

	if !p.forcedOffline.Load() {
		pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
		err := p.pinger.Ping(pingCtx)
		cancel()

		if err == nil {
			status = Connected
		} else {
			p.logger.Debug().Err(err).Msg("server unreachable")
		}
	}

	if p.set(status) {
		p.logger.Info().Stringer("status", status).Msg("connectivity changed")
	}
	return status
}

// SetForcedOffline pins the prober to disconnected, or releases it. Release
// takes effect on the next probe.
func (p *Prober) SetForcedOffline(ctx context.Context, forced bool) Status {
	p.forcedOffline.Store(forced)
	return p.Probe(ctx)
}

// ForcedOffline reports whether the prober is pinned to disconnected.
func (p *Prober) ForcedOffline() bool {
	return p.forcedOffline.Load()
}

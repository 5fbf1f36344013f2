// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-coffee-lobby/internal/adapter"
	"github.com/MKhiriev/go-coffee-lobby/internal/logger"
	"github.com/MKhiriev/go-coffee-lobby/internal/network"
	"github.com/MKhiriev/go-coffee-lobby/models"
)

// EngineDeps is everything the engine talks to. It is passed once at
// construction; the engine keeps no package-level state.
type EngineDeps struct {
	Adapter   adapter.ServerAdapter
	Intents   IntentQueue
	Cache     ItemCacher
	Monitor   network.Monitor
	Conflicts ConflictPresenter
	Clock     Clock
	Logger    *logger.Logger
}

// Engine keeps the in-memory item collection consistent with the server and
// the local intent queue.
//
// A single goroutine started by [Engine.Run] owns the [models.ItemsState].
// Every mutation is a closure sent to that goroutine. Remote calls and store
// I/O run on the caller's goroutine and post their results back, so the loop
// never blocks on the network.
type Engine struct {
	deps   EngineDeps
	logger *logger.Logger

	inbox chan message
	done  chan struct{}
	// running guards against a second Run.
	running atomic.Bool

	snapshot atomic.Pointer[models.ItemsState]

	subsMu sync.Mutex
	subs   map[int]chan models.ItemsState
	nextID int

	// loop-owned
	state       models.ItemsState
	runCtx      context.Context
	fetchCancel context.CancelFunc
	pushClose   func()
	pushGen     int
	replayBusy  bool
	replayAgain bool
}

type message struct {
	fn   func()
	done chan struct{}
}

// NewEngine constructs an idle engine. Call Run to start it.
func NewEngine(deps EngineDeps) *Engine {
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	e := &Engine{
		deps:   deps,
		logger: deps.Logger.Component("engine"),
		inbox:  make(chan message),
		done:   make(chan struct{}),
		subs:   make(map[int]chan models.ItemsState),
	}
	e.snapshot.Store(&models.ItemsState{})
	return e
}

// Run executes the engine loop until ctx is done. It replays queued intents
// on every disconnected to connected transition of the monitor.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrEngineAlreadyRunning
	}
	defer close(e.done)

	e.runCtx = ctx
	transitions, unsubscribe := e.deps.Monitor.Subscribe()
	defer unsubscribe()

	e.logger.Info().Msg("engine started")
	for {
		select {
		case <-ctx.Done():
			e.shutdown()
			e.logger.Info().Msg("engine stopped")
			return nil

		case msg := <-e.inbox:
			msg.fn()
			e.publish()
			close(msg.done)

		case status, ok := <-transitions:
			if !ok {
				transitions = nil
				continue
			}
			e.onConnectivity(status)
		}
	}
}

func (e *Engine) onConnectivity(status network.Status) {
	e.logger.Debug().Stringer("status", status).Msg("connectivity transition")
	if status != network.Connected {
		// a dropped link usually takes the push channel with it
		e.closePush()
		return
	}
	if e.state.Session.IsZero() {
		return
	}

	if e.pushClose == nil {
		e.openPush()
	}
	e.startReplay()
}

func (e *Engine) shutdown() {
	if e.fetchCancel != nil {
		e.fetchCancel()
	}
	e.closePush()

	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for id, ch := range e.subs {
		close(ch)
		delete(e.subs, id)
	}
}

// exec runs fn on the loop and waits for it to finish.
func (e *Engine) exec(ctx context.Context, fn func()) error {
	msg := message{fn: fn, done: make(chan struct{})}

	select {
	case e.inbox <- msg:
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrEngineStopped
	}

	select {
	case <-msg.done:
		return nil
	case <-e.done:
		return ErrEngineStopped
	}
}

// Snapshot returns a copy of the current state. It never blocks on the loop.
func (e *Engine) Snapshot() models.ItemsState {
	return e.snapshot.Load().Clone()
}

// Subscribe returns a channel receiving a snapshot after every state change
// and a function that cancels the subscription. Only the newest snapshot is
// kept for a slow reader.
func (e *Engine) Subscribe() (<-chan models.ItemsState, func()) {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()

	id := e.nextID
	e.nextID++
	ch := make(chan models.ItemsState, 1)
	ch <- e.Snapshot()
	e.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.subsMu.Lock()
			defer e.subsMu.Unlock()
			if _, ok := e.subs[id]; ok {
				delete(e.subs, id)
				close(ch)
			}
		})
	}
}

func (e *Engine) publish() {
	current := e.state.Clone()
	e.snapshot.Store(&current)

	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for _, ch := range e.subs {
		select {
		case <-ch:
		default:
		}
		ch <- current.Clone()
	}
}

// Acknowledge returns finished operations (succeeded or failed) to idle and
// clears their errors. The UI calls it once it has shown the outcome.
func (e *Engine) Acknowledge(ctx context.Context) error {
	return e.exec(ctx, func() {
		settle := func(status *models.OperationStatus, err *error) {
			if *status == models.StatusSucceeded || *status == models.StatusFailed {
				*status = models.StatusIdle
				*err = nil
			}
		}
		settle(&e.state.Fetch, &e.state.FetchingError)
		settle(&e.state.Save, &e.state.SavingError)
		settle(&e.state.Delete, &e.state.DeletingError)
	})
}

func (e *Engine) now() int64 {
	return e.deps.Clock.Now().UnixMilli()
}

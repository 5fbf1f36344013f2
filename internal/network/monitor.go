// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import "sync"

// Status is the reachability of the server.
type Status int

const (
	Disconnected Status = iota
	Connected
)

func (s Status) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// Monitor reports connectivity and its transitions.
type Monitor interface {
	// Status returns the last observed status.
	Status() Status

	// Subscribe returns a channel receiving every status transition and a
	// function that unsubscribes and closes the channel. A slow subscriber
	// only ever sees the latest transition.
	Subscribe() (<-chan Status, func())
}

// broadcaster holds the status and fans transitions out to subscribers.
type broadcaster struct {
	mu     sync.Mutex
	status Status
	nextID int
	subs   map[int]chan Status
}

func newBroadcaster(initial Status) *broadcaster {
	return &broadcaster{status: initial, subs: make(map[int]chan Status)}
}

func (b *broadcaster) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

func (b *broadcaster) Subscribe() (<-chan Status, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Status, 1)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

// set records status and reports whether it was a transition.
func (b *broadcaster) set(status Status) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status == status {
		return false
	}
	b.status = status

	for _, ch := range b.subs {
		select {
		case ch <- status:
		default:
			// replace the undelivered transition with the newer one
			select {
			case <-ch:
			default:
			}
			ch <- status
		}
	}
	return true
}

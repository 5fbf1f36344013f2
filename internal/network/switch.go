// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

// Switch is a [Monitor] whose status is set by hand.
type Switch struct {
	*broadcaster
}

// NewSwitch returns a switch starting at initial.
func NewSwitch(initial Status) *Switch {
	return &Switch{broadcaster: newBroadcaster(initial)}
}

// Set changes the status. It reports whether that was a transition.
func (s *Switch) Set(status Status) bool {
	return s.set(status)
}

// Toggle flips the status and returns the new one.
func (s *Switch) Toggle() Status {
	next := Connected
	if s.Status() == Connected {
		next = Disconnected
	}
	s.set(next)
	return next
}

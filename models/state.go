// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OperationStatus is the state of one operation class (fetch, save, delete).
type OperationStatus int

const (
	StatusIdle OperationStatus = iota
	StatusInFlight
	StatusSucceeded
	StatusFailed
)

func (s OperationStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInFlight:
		return "in_flight"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ItemsState is the in-memory engine state exposed to the UI. Snapshots are
// copies; mutating one never affects the engine.
type ItemsState struct {
	// Items is ordered most-recently-created first.
	Items []Item

	Fetch  OperationStatus
	Save   OperationStatus
	Delete OperationStatus

	FetchingError error
	SavingError   error
	DeletingError error

	// Session is the session the state belongs to.
	Session Session
}

// Fetching reports whether a fetch is in flight.
func (s ItemsState) Fetching() bool { return s.Fetch == StatusInFlight }

// Saving reports whether a save is in flight.
func (s ItemsState) Saving() bool { return s.Save == StatusInFlight }

// Deleting reports whether a delete is in flight.
func (s ItemsState) Deleting() bool { return s.Delete == StatusInFlight }

// Clone returns a deep copy of the item slice.
func (s ItemsState) Clone() ItemsState {
	if s.Items != nil {
		items := make([]Item, len(s.Items))
		copy(items, s.Items)
		s.Items = items
	}
	return s
}

// IndexOf returns the position of the entry matching item, or -1.
func (s ItemsState) IndexOf(item Item) int {
	for i, it := range s.Items {
		if it.SameAs(item) {
			return i
		}
	}
	return -1
}

// Session identifies the authenticated user the engine works for.
type Session struct {
	Token  string
	UserID int64
}

// IsZero reports whether no session is present.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is a single coffee entry synchronised between the device and the
// server.
//
// ID is assigned by the server on first creation. An item with an empty ID
// has never been persisted remotely and must go through create, not update.
type Item struct {
	// ID is the server-assigned identity. Empty for unsaved local items.
	ID string `json:"_id,omitempty"`

	// Title is the display name of the coffee.
	Title string `json:"title"`

	// Description is a free-form tasting note.
	Description string `json:"description"`

	// Mark is the numeric rating given by the user.
	Mark int `json:"mark"`

	// Recommended marks an item the user would recommend to others.
	Recommended bool `json:"recommended"`

	// Date is a free-form date stamp set by the editor.
	Date string `json:"date,omitempty"`

	// Photo is an optional reference to an attached picture.
	Photo *Photo `json:"photo,omitempty"`

	// Position is an optional geolocation where the coffee was tasted.
	Position *Position `json:"position,omitempty"`

	// Version is the server-side optimistic locking counter. The server
	// rejects an update carrying a stale version with 409 Conflict.
	Version int64 `json:"version,omitempty"`

	// AcquiredAt is a client-local unix-millisecond timestamp marking when
	// this copy was last known fresh. Never sent to the server.
	AcquiredAt int64 `json:"acquiredAt,omitempty"`

	// PendingKey is the client-local intent key of an optimistic placeholder
	// created while offline. Never sent to the server.
	PendingKey string `json:"pendingKey,omitempty"`
}

// Photo references a picture attached to an item.
type Photo struct {
	Filepath    string `json:"filepath"`
	WebviewPath string `json:"webviewPath,omitempty"`
}

// Position is a geolocation fix.
type Position struct {
	Coords    Coordinates `json:"coords"`
	Timestamp int64       `json:"timestamp,omitempty"`
}

// Coordinates holds latitude/longitude in degrees and accuracy in meters.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// HasIdentity reports whether the item has been created on the server.
func (i Item) HasIdentity() bool {
	return i.ID != ""
}

// ForRemote returns a copy of the item with every client-local field
// cleared, ready to be sent to the server.
func (i Item) ForRemote() Item {
	i.AcquiredAt = 0
	i.PendingKey = ""
	return i
}

// SameAs reports whether two items denote the same logical entry: equal
// identities when both have one, otherwise equal pending keys of offline
// placeholders.
func (i Item) SameAs(other Item) bool {
	if i.HasIdentity() || other.HasIdentity() {
		return i.ID == other.ID
	}
	return i.PendingKey != "" && i.PendingKey == other.PendingKey
}

// IsSpeciality reports whether the item is rated above the speciality
// threshold.
func (i Item) IsSpeciality() bool {
	return i.Mark > SpecialityMark
}

// SpecialityMark is the rating above which an item counts as speciality
// coffee.
const SpecialityMark = 6

// Package models defines client-side data models used by the AfriStyle CLI.
package models

import "time"

// Outfit is a style post fetched from the backend catalog.
// The record is authoritative on the server; fields are immutable on the
// client for the lifetime of a session except where a write operation
// explicitly updates them.
type Outfit struct {
	// ID is the opaque backend identifier for the outfit.
	ID string `json:"id"`

	// Title is the short display name of the look.
	Title string `json:"title"`

	// Description is the longer free-text body shown on the detail screen.
	Description string `json:"description,omitempty"`

	// Category is the slug of the style category the outfit belongs to.
	Category string `json:"category,omitempty"`

	// ImageURL points at the outfit photo (served from object storage).
	ImageURL string `json:"image_url,omitempty"`

	// Designer credits the creator of the look.
	Designer string `json:"designer,omitempty"`

	// Likes is the server-side like counter.
	Likes int `json:"likes"`

	// Status is the publication status ("published", "draft", ...).
	Status string `json:"status,omitempty"`

	// CreatedAt is the creation time in UTC.
	CreatedAt time.Time `json:"created_at"`
}

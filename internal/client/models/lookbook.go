package models

import "time"

// LookbookFolder is a user-owned folder of saved styles.
// Color is assigned locally (round-robin from a fixed palette) for list
// rendering and is never sent to or persisted on the backend.
type LookbookFolder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Color string `json:"-"`
}

// SavedStyle is an outfit reference saved into a lookbook folder.
// DisplayID is the session-local numeric key derived from OutfitID; it is
// only meaningful while the process that produced it is alive.
type SavedStyle struct {
	OutfitID string    `json:"outfit_id"`
	FolderID string    `json:"folder_id"`
	Notes    string    `json:"notes,omitempty"`
	SavedAt  time.Time `json:"saved_at"`

	DisplayID int32 `json:"-"`
}

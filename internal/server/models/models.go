// Package models defines the server-side database records.
package models

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	AvatarURL    string
	CreatedAt    time.Time
}

type Outfit struct {
	ID          string
	Title       string
	Description string
	Category    string
	ImageKey    string
	Designer    string
	Likes       int
	Status      string
	CreatedAt   time.Time
}

type BlogPost struct {
	ID          string
	Title       string
	Excerpt     string
	Body        string
	Author      string
	CoverURL    string
	PublishedAt time.Time
}

type Category struct {
	ID   string
	Name string
	Slug string
}

type LookbookFolder struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

type SavedStyle struct {
	FolderID string
	OutfitID string
	Notes    string
	SavedAt  time.Time
}

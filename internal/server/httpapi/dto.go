package httpapi

import (
	"time"

	"github.com/afristyle/afristyle/internal/server/models"
)

// Response DTOs. Field names are part of the wire contract with the mobile
// and CLI clients; keep them stable.

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type outfitResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Designer    string    `json:"designer,omitempty"`
	Likes       int       `json:"likes"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type blogPostResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body,omitempty"`
	Author      string    `json:"author,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type folderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type savedStyleResponse struct {
	OutfitID string    `json:"outfit_id"`
	FolderID string    `json:"folder_id"`
	Notes    string    `json:"notes,omitempty"`
	SavedAt  time.Time `json:"saved_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, AvatarURL: u.AvatarURL}
}

func toOutfitResponse(o *models.Outfit, imageURL string) outfitResponse {
	return outfitResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Category:    o.Category,
		ImageURL:    imageURL,
		Designer:    o.Designer,
		Likes:       o.Likes,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

func toBlogPostResponse(p *models.BlogPost) blogPostResponse {
	return blogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Body:        p.Body,
		Author:      p.Author,
		CoverURL:    p.CoverURL,
		PublishedAt: p.PublishedAt,
	}
}

func toFolderResponse(f *models.LookbookFolder) folderResponse {
	return folderResponse{ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt}
}

func toSavedStyleResponse(s *models.SavedStyle) savedStyleResponse {
	return savedStyleResponse{OutfitID: s.OutfitID, FolderID: s.FolderID, Notes: s.Notes, SavedAt: s.SavedAt}
}

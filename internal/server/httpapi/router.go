package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles everything NewRouter mounts.
type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Lookbooks *LookbookHandler
	Media     *MediaHandler

	JWTSecret string
}

// NewRouter mounts the full API surface. Auth endpoints are rate limited per
// IP; lookbook and media routes require a valid bearer token.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(RateLimit(5, 10))
		r.Post("/api/v1/auth/register", h.Auth.HandleRegister)
		r.Post("/api/v1/auth/login", h.Auth.HandleLogin)
	})

	// public catalog
	r.Get("/api/v1/outfits", h.Catalog.HandleListOutfits)
	r.Get("/api/v1/outfits/{outfit_id}", h.Catalog.HandleGetOutfit)
	r.Get("/api/v1/blogs", h.Catalog.HandleListBlogPosts)
	r.Get("/api/v1/blogs/{post_id}", h.Catalog.HandleGetBlogPost)
	r.Get("/api/v1/categories", h.Catalog.HandleListCategories)

	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(h.JWTSecret))
		r.Get("/api/v1/auth/me", h.Auth.HandleMe)
		r.Post("/api/v1/auth/logout", h.Auth.HandleLogout)

		r.Get("/api/v1/lookbooks", h.Lookbooks.HandleListFolders)
		r.Post("/api/v1/lookbooks", h.Lookbooks.HandleCreateFolder)
		r.Delete("/api/v1/lookbooks/{folder_id}", h.Lookbooks.HandleDeleteFolder)
		r.Get("/api/v1/lookbooks/{folder_id}/styles", h.Lookbooks.HandleListStyles)
		r.Post("/api/v1/lookbooks/{folder_id}/styles", h.Lookbooks.HandleSaveStyle)
		r.Delete("/api/v1/lookbooks/{folder_id}/styles/{outfit_id}", h.Lookbooks.HandleRemoveStyle)

		r.Post("/api/v1/media/upload-url", h.Media.HandleUploadURL)
	})

	return r
}

package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/logging"
	"github.com/afristyle/afristyle/internal/server/repository"
	"github.com/afristyle/afristyle/internal/server/services"
)

// CatalogHandler serves the public outfit feed, the blog and the categories.
type CatalogHandler struct {
	catalog *services.CatalogService
	media   *services.MediaService
	log     logging.Logger
}

func NewCatalogHandler(catalog *services.CatalogService, media *services.MediaService, log logging.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, media: media, log: log.With("component", "catalog")}
}

// pageQuery turns page/limit query params into a limit/offset pair.
// Page numbers start at 1.
func pageQuery(r *http.Request) (limit, offset int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page > 1 && limit > 0 {
		offset = (page - 1) * limit
	}
	return limit, offset
}

func (h *CatalogHandler) HandleListOutfits(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageQuery(r)
	q := repository.OutfitQuery{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
		Limit:    limit,
		Offset:   offset,
	}

	outfits, total, err := h.catalog.ListOutfits(r.Context(), q)
	if err != nil {
		h.log.Error(r.Context(), "list outfits failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not list outfits")
		return
	}

	out := make([]outfitResponse, 0, len(outfits))
	for _, outfit := range outfits {
		out = append(out, toOutfitResponse(outfit, ""))
	}
	writeJSONWithTotal(w, http.StatusOK, out, total)
}

func (h *CatalogHandler) HandleGetOutfit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "outfit_id")

	outfit, err := h.catalog.GetOutfit(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "outfit not found")
			return
		}
		h.log.Error(r.Context(), "get outfit failed", "outfit", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not load outfit")
		return
	}

	// the detail view gets a time-limited download URL for the image
	imageURL := ""
	if outfit.ImageKey != "" {
		imageURL, err = h.media.GetPresignedGetURL(r.Context(), outfit.ImageKey)
		if err != nil {
			h.log.Warn(r.Context(), "image presign failed", "outfit", id, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, toOutfitResponse(outfit, imageURL))
}

func (h *CatalogHandler) HandleListBlogPosts(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageQuery(r)

	posts, total, err := h.catalog.ListBlogPosts(r.Context(), limit, offset)
	if err != nil {
		h.log.Error(r.Context(), "list blog posts failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not list posts")
		return
	}

	out := make([]blogPostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toBlogPostResponse(post))
	}
	writeJSONWithTotal(w, http.StatusOK, out, total)
}

func (h *CatalogHandler) HandleGetBlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "post_id")

	post, err := h.catalog.GetBlogPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "post not found")
			return
		}
		h.log.Error(r.Context(), "get blog post failed", "post", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not load post")
		return
	}

	writeJSON(w, http.StatusOK, toBlogPostResponse(post))
}

func (h *CatalogHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.log.Error(r.Context(), "list categories failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not list categories")
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	writeJSON(w, http.StatusOK, out)
}

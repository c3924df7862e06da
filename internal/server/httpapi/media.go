package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/afristyle/afristyle/internal/logging"
	"github.com/afristyle/afristyle/internal/server/services"
)

// MediaHandler hands out presigned upload URLs.
type MediaHandler struct {
	service *services.MediaService
	log     logging.Logger
}

func NewMediaHandler(svc *services.MediaService, log logging.Logger) *MediaHandler {
	return &MediaHandler{service: svc, log: log.With("component", "media")}
}

type uploadURLRequest struct {
	ContentType string `json:"content_type"`
}

type uploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (h *MediaHandler) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ContentType == "" {
		req.ContentType = "application/octet-stream"
	}

	key, url, err := h.service.GetPresignedPutURL(r.Context(), req.ContentType)
	if err != nil {
		h.log.Error(r.Context(), "upload presign failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not create upload URL")
		return
	}

	writeJSON(w, http.StatusOK, uploadURLResponse{Key: key, URL: url})
}

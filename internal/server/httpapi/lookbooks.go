package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/logging"
	"github.com/afristyle/afristyle/internal/server/services"
)

// LookbookHandler serves the authenticated folder and saved-style routes.
type LookbookHandler struct {
	service *services.LookbookService
	log     logging.Logger
}

func NewLookbookHandler(svc *services.LookbookService, log logging.Logger) *LookbookHandler {
	return &LookbookHandler{service: svc, log: log.With("component", "lookbooks")}
}

type createFolderRequest struct {
	Name string `json:"name"`
}

type saveStyleRequest struct {
	OutfitID string `json:"outfit_id"`
	Notes    string `json:"notes"`
}

func (h *LookbookHandler) HandleListFolders(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	folders, err := h.service.ListFolders(r.Context(), userID)
	if err != nil {
		h.log.Error(r.Context(), "list folders failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not list folders")
		return
	}

	out := make([]folderResponse, 0, len(folders))
	for _, folder := range folders {
		out = append(out, toFolderResponse(folder))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LookbookHandler) HandleCreateFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.service.CreateFolder(r.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrFolderNameRequired) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error(r.Context(), "create folder failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not create folder")
		return
	}

	writeJSON(w, http.StatusCreated, toFolderResponse(folder))
}

func (h *LookbookHandler) HandleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	folderID := chi.URLParam(r, "folder_id")
	if err := h.service.DeleteFolder(r.Context(), userID, folderID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "folder not found")
			return
		}
		h.log.Error(r.Context(), "delete folder failed", "folder", folderID, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not delete folder")
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

func (h *LookbookHandler) HandleListStyles(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	folderID := chi.URLParam(r, "folder_id")
	styles, err := h.service.ListStyles(r.Context(), userID, folderID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "folder not found")
			return
		}
		h.log.Error(r.Context(), "list styles failed", "folder", folderID, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not list styles")
		return
	}

	out := make([]savedStyleResponse, 0, len(styles))
	for _, style := range styles {
		out = append(out, toSavedStyleResponse(style))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LookbookHandler) HandleSaveStyle(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	folderID := chi.URLParam(r, "folder_id")

	var req saveStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	style, err := h.service.SaveStyle(r.Context(), userID, folderID, req.OutfitID, req.Notes)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "folder or outfit not found")
			return
		}
		h.log.Error(r.Context(), "save style failed", "folder", folderID, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not save style")
		return
	}

	writeJSON(w, http.StatusCreated, toSavedStyleResponse(style))
}

func (h *LookbookHandler) HandleRemoveStyle(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	folderID := chi.URLParam(r, "folder_id")
	outfitID := chi.URLParam(r, "outfit_id")

	if err := h.service.RemoveStyle(r.Context(), userID, folderID, outfitID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "saved style not found")
			return
		}
		h.log.Error(r.Context(), "remove style failed", "folder", folderID, "outfit", outfitID, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "could not remove style")
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

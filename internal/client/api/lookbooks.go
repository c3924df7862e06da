package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/afristyle/afristyle/internal/client/models"
)

type createFolderRequest struct {
	Name string `json:"name"`
}

type saveStyleRequest struct {
	OutfitID string `json:"outfit_id"`
	Notes    string `json:"notes,omitempty"`
}

func (c *HTTPClient) ListFolders(ctx context.Context) ([]models.LookbookFolder, error) {
	var folders []models.LookbookFolder
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/lookbooks", nil, nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (c *HTTPClient) CreateFolder(ctx context.Context, name string) (*models.LookbookFolder, error) {
	var folder models.LookbookFolder
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/lookbooks", nil, createFolderRequest{Name: name}, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (c *HTTPClient) DeleteFolder(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/lookbooks/"+url.PathEscape(id), nil, nil, nil)
	return err
}

func (c *HTTPClient) ListFolderStyles(ctx context.Context, folderID string) ([]models.SavedStyle, error) {
	var styles []models.SavedStyle
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/lookbooks/"+url.PathEscape(folderID)+"/styles", nil, nil, &styles); err != nil {
		return nil, err
	}
	return styles, nil
}

func (c *HTTPClient) SaveStyle(ctx context.Context, folderID, outfitID, notes string) (*models.SavedStyle, error) {
	var style models.SavedStyle
	req := saveStyleRequest{OutfitID: outfitID, Notes: notes}
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/lookbooks/"+url.PathEscape(folderID)+"/styles", nil, req, &style); err != nil {
		return nil, err
	}
	return &style, nil
}

func (c *HTTPClient) RemoveStyle(ctx context.Context, folderID, outfitID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/lookbooks/"+url.PathEscape(folderID)+"/styles/"+url.PathEscape(outfitID), nil, nil, nil)
	return err
}

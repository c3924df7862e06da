package api

import (
	"context"
	"net/http"

	"github.com/afristyle/afristyle/internal/client/models"
)

// ListOutfits fetches a page of the outfit feed. The second return is the
// server-reported total when present, otherwise the page length.
func (c *HTTPClient) ListOutfits(ctx context.Context, filter *models.ListFilter) ([]models.Outfit, int, error) {
	var outfits []models.Outfit
	env, err := c.do(ctx, http.MethodGet, "/api/v1/outfits", encodeFilter(filter), nil, &outfits)
	if err != nil {
		return nil, 0, err
	}
	total := len(outfits)
	if env.Total != nil {
		total = *env.Total
	}
	return outfits, total, nil
}

func (c *HTTPClient) GetOutfit(ctx context.Context, id string) (*models.Outfit, error) {
	var outfit models.Outfit
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/outfits/"+id, nil, nil, &outfit); err != nil {
		return nil, err
	}
	return &outfit, nil
}

// GetUploadURL asks the backend for a presigned PUT URL for an outfit image.
// The returned key is the storage key to reference in a later outfit create.
func (c *HTTPClient) GetUploadURL(ctx context.Context, contentType string) (string, string, error) {
	var out struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	body := map[string]string{"content_type": contentType}
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/media/upload-url", nil, body, &out); err != nil {
		return "", "", err
	}
	return out.Key, out.URL, nil
}

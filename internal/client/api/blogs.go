package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/afristyle/afristyle/internal/client/models"
)

func (c *HTTPClient) ListBlogPosts(ctx context.Context, filter *models.ListFilter) ([]models.BlogPost, int, error) {
	var posts []models.BlogPost
	env, err := c.do(ctx, http.MethodGet, "/api/v1/blogs", encodeFilter(filter), nil, &posts)
	if err != nil {
		return nil, 0, err
	}
	total := len(posts)
	if env.Total != nil {
		total = *env.Total
	}
	return posts, total, nil
}

func (c *HTTPClient) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/blogs/"+id, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListCategories fetches the category taxonomy. Unlike the other list calls
// this one propagates failures verbatim: callers cache categories at startup
// and need the raw cause, not a softened envelope error.
func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, nil, &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

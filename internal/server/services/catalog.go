package services

import (
	"context"

	"github.com/afristyle/afristyle/internal/server/models"
	"github.com/afristyle/afristyle/internal/server/repository"
)

// CatalogService serves the public outfit feed and the editorial blog.
type CatalogService struct {
	outfits repository.OutfitRepository
	blogs   repository.BlogRepository
}

func NewCatalogService(outfits repository.OutfitRepository, blogs repository.BlogRepository) *CatalogService {
	return &CatalogService{outfits: outfits, blogs: blogs}
}

func (s *CatalogService) ListOutfits(ctx context.Context, q repository.OutfitQuery) ([]*models.Outfit, int, error) {
	return s.outfits.List(ctx, q)
}

func (s *CatalogService) GetOutfit(ctx context.Context, id string) (*models.Outfit, error) {
	return s.outfits.GetByID(ctx, id)
}

func (s *CatalogService) ListBlogPosts(ctx context.Context, limit, offset int) ([]*models.BlogPost, int, error) {
	return s.blogs.List(ctx, limit, offset)
}

func (s *CatalogService) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.blogs.GetByID(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.blogs.ListCategories(ctx)
}

package services

import (
	"context"
	"errors"

	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/server/models"
	"github.com/afristyle/afristyle/internal/server/repository"
)

var ErrFolderNameRequired = errors.New("folder name is required")

// LookbookService handles the per-user folder and saved-style operations.
// Every operation is scoped to the owning user; touching another user's
// folder reports not-found rather than forbidden.
type LookbookService struct {
	lookbooks repository.LookbookRepository
	outfits   repository.OutfitRepository
}

func NewLookbookService(lookbooks repository.LookbookRepository, outfits repository.OutfitRepository) *LookbookService {
	return &LookbookService{lookbooks: lookbooks, outfits: outfits}
}

func (s *LookbookService) ListFolders(ctx context.Context, userID string) ([]*models.LookbookFolder, error) {
	return s.lookbooks.ListFolders(ctx, userID)
}

func (s *LookbookService) CreateFolder(ctx context.Context, userID, name string) (*models.LookbookFolder, error) {
	if name == "" {
		return nil, ErrFolderNameRequired
	}
	return s.lookbooks.CreateFolder(ctx, &models.LookbookFolder{UserID: userID, Name: name})
}

func (s *LookbookService) DeleteFolder(ctx context.Context, userID, folderID string) error {
	return s.lookbooks.DeleteFolder(ctx, userID, folderID)
}

func (s *LookbookService) ListStyles(ctx context.Context, userID, folderID string) ([]*models.SavedStyle, error) {
	if _, err := s.lookbooks.GetFolder(ctx, userID, folderID); err != nil {
		return nil, err
	}
	return s.lookbooks.ListStyles(ctx, folderID)
}

// SaveStyle saves outfitID into the user's folder. The outfit must exist and
// the folder must belong to the user.
func (s *LookbookService) SaveStyle(ctx context.Context, userID, folderID, outfitID, notes string) (*models.SavedStyle, error) {
	if _, err := s.lookbooks.GetFolder(ctx, userID, folderID); err != nil {
		return nil, err
	}
	if _, err := s.outfits.GetByID(ctx, outfitID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	return s.lookbooks.SaveStyle(ctx, &models.SavedStyle{
		FolderID: folderID,
		OutfitID: outfitID,
		Notes:    notes,
	})
}

func (s *LookbookService) RemoveStyle(ctx context.Context, userID, folderID, outfitID string) error {
	if _, err := s.lookbooks.GetFolder(ctx, userID, folderID); err != nil {
		return err
	}
	return s.lookbooks.RemoveStyle(ctx, folderID, outfitID)
}

package api

import (
	"context"

	"github.com/afristyle/afristyle/internal/client/models"
)

// Client is the typed surface of the AfriStyle backend REST API.
// Implementations normalize transport and HTTP errors into sentinel errors
// (common.ErrUnauthorized, ErrUnavailable) and *Error for backend rejections.
type Client interface {
	Close() error

	// SetToken attaches a bearer token to all subsequent requests.
	// An empty token detaches it.
	SetToken(token string)

	Register(ctx context.Context, email, password, name string) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)

	ListOutfits(ctx context.Context, filter *models.ListFilter) ([]models.Outfit, int, error)
	GetOutfit(ctx context.Context, id string) (*models.Outfit, error)

	ListBlogPosts(ctx context.Context, filter *models.ListFilter) ([]models.BlogPost, int, error)
	GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error)

	ListCategories(ctx context.Context) ([]models.Category, error)

	ListFolders(ctx context.Context) ([]models.LookbookFolder, error)
	CreateFolder(ctx context.Context, name string) (*models.LookbookFolder, error)
	DeleteFolder(ctx context.Context, id string) error
	ListFolderStyles(ctx context.Context, folderID string) ([]models.SavedStyle, error)
	SaveStyle(ctx context.Context, folderID, outfitID, notes string) (*models.SavedStyle, error)
	RemoveStyle(ctx context.Context, folderID, outfitID string) error

	GetUploadURL(ctx context.Context, contentType string) (key string, url string, err error)
}

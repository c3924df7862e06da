package state

import (
	"context"

	"github.com/afristyle/afristyle/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Each operation returns
// the configured result/error and records its arguments and call count.
type fakeClient struct {
	CloseErr error

	Token string

	RegisterRet *models.Session
	RegisterErr error

	LoginRet *models.Session
	LoginErr error

	LogoutErr   error
	LogoutCalls int

	MeRet   *models.User
	MeErr   error
	MeCalls int

	ListOutfitsRet   []models.Outfit
	ListOutfitsTotal int
	ListOutfitsErr   error

	GetOutfitRet *models.Outfit
	GetOutfitErr error

	ListBlogPostsRet []models.BlogPost
	ListBlogPostsErr error

	GetBlogPostRet *models.BlogPost
	GetBlogPostErr error

	ListCategoriesRet []models.Category
	ListCategoriesErr error

	ListFoldersRet []models.LookbookFolder
	ListFoldersErr error

	CreateFolderRet *models.LookbookFolder
	CreateFolderErr error

	DeleteFolderErr   error
	DeleteFolderCalls int
	LastDeletedFolder string

	FolderStyles        map[string][]models.SavedStyle
	ListFolderStylesErr error

	SaveStyleRet   *models.SavedStyle
	SaveStyleErr   error
	SaveStyleCalls int
	LastSaveFolder string
	LastSaveOutfit string
	LastSaveNotes  string

	RemoveStyleErr   error
	RemoveStyleCalls int
	LastRemoveFolder string
	LastRemoveOutfit string

	UploadKey string
	UploadURL string
	UploadErr error
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) SetToken(token string) { f.Token = token }

func (f *fakeClient) Register(ctx context.Context, email, password, name string) (*models.Session, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.MeCalls++
	return f.MeRet, f.MeErr
}

func (f *fakeClient) ListOutfits(ctx context.Context, filter *models.ListFilter) ([]models.Outfit, int, error) {
	return f.ListOutfitsRet, f.ListOutfitsTotal, f.ListOutfitsErr
}

func (f *fakeClient) GetOutfit(ctx context.Context, id string) (*models.Outfit, error) {
	return f.GetOutfitRet, f.GetOutfitErr
}

func (f *fakeClient) ListBlogPosts(ctx context.Context, filter *models.ListFilter) ([]models.BlogPost, int, error) {
	return f.ListBlogPostsRet, len(f.ListBlogPostsRet), f.ListBlogPostsErr
}

func (f *fakeClient) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	return f.GetBlogPostRet, f.GetBlogPostErr
}

func (f *fakeClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.ListCategoriesRet, f.ListCategoriesErr
}

func (f *fakeClient) ListFolders(ctx context.Context) ([]models.LookbookFolder, error) {
	return f.ListFoldersRet, f.ListFoldersErr
}

func (f *fakeClient) CreateFolder(ctx context.Context, name string) (*models.LookbookFolder, error) {
	return f.CreateFolderRet, f.CreateFolderErr
}

func (f *fakeClient) DeleteFolder(ctx context.Context, id string) error {
	f.DeleteFolderCalls++
	f.LastDeletedFolder = id
	return f.DeleteFolderErr
}

func (f *fakeClient) ListFolderStyles(ctx context.Context, folderID string) ([]models.SavedStyle, error) {
	if f.ListFolderStylesErr != nil {
		return nil, f.ListFolderStylesErr
	}
	return f.FolderStyles[folderID], nil
}

func (f *fakeClient) SaveStyle(ctx context.Context, folderID, outfitID, notes string) (*models.SavedStyle, error) {
	f.SaveStyleCalls++
	f.LastSaveFolder = folderID
	f.LastSaveOutfit = outfitID
	f.LastSaveNotes = notes
	return f.SaveStyleRet, f.SaveStyleErr
}

func (f *fakeClient) RemoveStyle(ctx context.Context, folderID, outfitID string) error {
	f.RemoveStyleCalls++
	f.LastRemoveFolder = folderID
	f.LastRemoveOutfit = outfitID
	return f.RemoveStyleErr
}

func (f *fakeClient) GetUploadURL(ctx context.Context, contentType string) (string, string, error) {
	return f.UploadKey, f.UploadURL, f.UploadErr
}

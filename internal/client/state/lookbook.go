package state

import (
	"context"
	"sync"

	"github.com/afristyle/afristyle/internal/client/api"
	"github.com/afristyle/afristyle/internal/client/display"
	"github.com/afristyle/afristyle/internal/client/models"
	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/logging"
)

// folderPalette colors folder cards in the UI. Assignment is round-robin in
// creation order, local-only, and never sent to the backend.
var folderPalette = []string{
	"#E8590C", // burnt orange
	"#2F9E44", // forest
	"#1971C2", // indigo
	"#9C36B5", // violet
	"#C2255C", // raspberry
	"#F08C00", // amber
}

// LookbookStore caches the user's folders and a flattened list of every
// saved style across them. Mutations are write-through: local state changes
// only after the backend confirms. The flattened list is maintained
// incrementally on each mutation; only Refresh refetches folder contents.
type LookbookStore struct {
	mu      sync.Mutex
	client  api.Client
	display *display.Adapter
	log     logging.Logger

	folders     []models.LookbookFolder
	savedStyles []models.SavedStyle
	loading     bool
	lastErr     error

	paletteNext int
}

func NewLookbookStore(client api.Client, adapter *display.Adapter, log logging.Logger) *LookbookStore {
	return &LookbookStore{
		client:  client,
		display: adapter,
		log:     log.With("component", "lookbook"),
	}
}

// Refresh replaces the folder list and the flattened saved-styles list from
// the backend. On failure the stale lists stay visible and the error is
// recorded. Fetching contents is one call per folder; acceptable here
// because Refresh only runs on initial load or an explicit pull-to-refresh.
func (s *LookbookStore) Refresh(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	folders, err := s.client.ListFolders(ctx)
	if err != nil {
		s.setErr(err)
		return err
	}

	styles := make([]models.SavedStyle, 0)
	for _, folder := range folders {
		folderStyles, err := s.client.ListFolderStyles(ctx, folder.ID)
		if err != nil {
			s.setErr(err)
			return err
		}
		for _, style := range folderStyles {
			style.DisplayID = s.display.ToDisplayID(style.OutfitID)
			styles = append(styles, style)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.paletteNext = 0
	for i := range folders {
		folders[i].Color = s.nextColorLocked()
	}
	s.folders = folders
	s.savedStyles = styles
	s.lastErr = nil
	return nil
}

// CreateFolder round-trips to the backend and appends the new folder (with
// its locally assigned color) only on success.
func (s *LookbookStore) CreateFolder(ctx context.Context, name string) (*models.LookbookFolder, error) {
	folder, err := s.client.CreateFolder(ctx, name)
	if err != nil {
		s.log.Error(ctx, "create folder failed", "name", name, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folder.Color = s.nextColorLocked()
	s.folders = append(s.folders, *folder)
	return folder, nil
}

// DeleteFolder removes the folder remotely, then drops it and every saved
// style whose FolderID matches in one locked update, so readers never see
// the folder gone but its styles still present.
func (s *LookbookStore) DeleteFolder(ctx context.Context, folderID string) error {
	if err := s.client.DeleteFolder(ctx, folderID); err != nil {
		s.log.Error(ctx, "delete folder failed", "folder", folderID, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folders := s.folders[:0]
	for _, folder := range s.folders {
		if folder.ID != folderID {
			folders = append(folders, folder)
		}
	}
	s.folders = folders

	styles := s.savedStyles[:0]
	for _, style := range s.savedStyles {
		if style.FolderID != folderID {
			styles = append(styles, style)
		}
	}
	s.savedStyles = styles
	return nil
}

// SaveStyle saves the outfit behind displayID into the folder. If the
// display identifier cannot be resolved the operation is aborted before any
// network call: the client cannot know which outfit was meant.
func (s *LookbookStore) SaveStyle(ctx context.Context, displayID int32, folderID, notes string) error {
	outfitID, ok := s.display.FromDisplayID(displayID)
	if !ok {
		s.log.Error(ctx, "save style aborted", "display_id", displayID, "error", common.ErrUnknownDisplayID)
		return common.ErrUnknownDisplayID
	}

	style, err := s.client.SaveStyle(ctx, folderID, outfitID, notes)
	if err != nil {
		s.log.Error(ctx, "save style failed", "folder", folderID, "outfit", outfitID, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	style.DisplayID = displayID
	s.savedStyles = append(s.savedStyles, *style)
	return nil
}

// RemoveStyle removes the saved style behind displayID from the first folder
// found containing it. The same outfit may be saved in other folders; those
// copies are untouched, locally and remotely.
// Same resolution rule as SaveStyle: unresolvable means no network call.
func (s *LookbookStore) RemoveStyle(ctx context.Context, displayID int32) error {
	outfitID, ok := s.display.FromDisplayID(displayID)
	if !ok {
		s.log.Error(ctx, "remove style aborted", "display_id", displayID, "error", common.ErrUnknownDisplayID)
		return common.ErrUnknownDisplayID
	}

	s.mu.Lock()
	folderID := ""
	for _, style := range s.savedStyles {
		if style.OutfitID == outfitID {
			folderID = style.FolderID
			break
		}
	}
	s.mu.Unlock()

	if folderID == "" {
		return common.ErrNotFound
	}

	if err := s.client.RemoveStyle(ctx, folderID, outfitID); err != nil {
		s.log.Error(ctx, "remove style failed", "folder", folderID, "outfit", outfitID, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	styles := s.savedStyles[:0]
	for _, style := range s.savedStyles {
		if style.FolderID != folderID || style.OutfitID != outfitID {
			styles = append(styles, style)
		}
	}
	s.savedStyles = styles
	return nil
}

func (s *LookbookStore) nextColorLocked() string {
	color := folderPalette[s.paletteNext%len(folderPalette)]
	s.paletteNext++
	return color
}

func (s *LookbookStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *LookbookStore) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// Folders returns a copy of the current folder list.
func (s *LookbookStore) Folders() []models.LookbookFolder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LookbookFolder, len(s.folders))
	copy(out, s.folders)
	return out
}

// SavedStyles returns a copy of the flattened saved-styles list.
func (s *LookbookStore) SavedStyles() []models.SavedStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SavedStyle, len(s.savedStyles))
	copy(out, s.savedStyles)
	return out
}

// StylesInFolder filters the flattened list down to one folder.
func (s *LookbookStore) StylesInFolder(folderID string) []models.SavedStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.SavedStyle
	for _, style := range s.savedStyles {
		if style.FolderID == folderID {
			out = append(out, style)
		}
	}
	return out
}

func (s *LookbookStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *LookbookStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

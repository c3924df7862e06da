package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/afristyle/afristyle/internal/client/display"
	"github.com/afristyle/afristyle/internal/client/models"
	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/logging"
)

func newLookbookStore(fc *fakeClient) (*LookbookStore, *display.Adapter) {
	adapter := display.NewAdapter()
	return NewLookbookStore(fc, adapter, logging.NewDefault()), adapter
}

func TestLookbookRefresh_FlattensStylesAcrossFolders(t *testing.T) {
	fc := &fakeClient{
		ListFoldersRet: []models.LookbookFolder{{ID: "f1", Name: "Work"}, {ID: "f2", Name: "Weekend"}},
		FolderStyles: map[string][]models.SavedStyle{
			"f1": {{OutfitID: "o1", FolderID: "f1"}},
			"f2": {{OutfitID: "o2", FolderID: "f2"}, {OutfitID: "o3", FolderID: "f2"}},
		},
	}
	s, adapter := newLookbookStore(fc)

	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, s.Folders(), 2)
	require.Len(t, s.SavedStyles(), 3)

	// every style got a resolvable display id
	for _, style := range s.SavedStyles() {
		remote, ok := adapter.FromDisplayID(style.DisplayID)
		require.True(t, ok)
		require.Equal(t, style.OutfitID, remote)
	}
}

func TestLookbookRefresh_AssignsPaletteColorsRoundRobin(t *testing.T) {
	folders := make([]models.LookbookFolder, len(folderPalette)+1)
	for i := range folders {
		folders[i] = models.LookbookFolder{ID: string(rune('a' + i))}
	}
	fc := &fakeClient{ListFoldersRet: folders}
	s, _ := newLookbookStore(fc)

	require.NoError(t, s.Refresh(context.Background()))

	got := s.Folders()
	require.Equal(t, folderPalette[0], got[0].Color)
	require.Equal(t, folderPalette[1], got[1].Color)
	// wraps around after the palette is exhausted
	require.Equal(t, folderPalette[0], got[len(folderPalette)].Color)
}

func TestLookbookRefresh_FailureKeepsStaleItems(t *testing.T) {
	fc := &fakeClient{
		ListFoldersRet: []models.LookbookFolder{{ID: "f1"}},
		FolderStyles:   map[string][]models.SavedStyle{"f1": {{OutfitID: "o1", FolderID: "f1"}}},
	}
	s, _ := newLookbookStore(fc)
	require.NoError(t, s.Refresh(context.Background()))

	fc.ListFoldersErr = errors.New("down")
	require.Error(t, s.Refresh(context.Background()))

	require.Len(t, s.Folders(), 1)
	require.Len(t, s.SavedStyles(), 1)
	require.Error(t, s.Err())
	require.False(t, s.Loading())
}

func TestSaveStyle_UnresolvableDisplayID_NoNetworkCall(t *testing.T) {
	fc := &fakeClient{}
	s, _ := newLookbookStore(fc)

	err := s.SaveStyle(context.Background(), 987654, "f1", "")
	require.ErrorIs(t, err, common.ErrUnknownDisplayID)
	require.Equal(t, 0, fc.SaveStyleCalls)
	require.Empty(t, s.SavedStyles())
}

func TestRemoveStyle_UnresolvableDisplayID_NoNetworkCall(t *testing.T) {
	fc := &fakeClient{}
	s, _ := newLookbookStore(fc)

	err := s.RemoveStyle(context.Background(), 987654)
	require.ErrorIs(t, err, common.ErrUnknownDisplayID)
	require.Equal(t, 0, fc.RemoveStyleCalls)
}

func TestSaveStyle_WriteThroughOnSuccess(t *testing.T) {
	now := time.Now().UTC()
	fc := &fakeClient{
		SaveStyleRet: &models.SavedStyle{OutfitID: "o1", FolderID: "f1", Notes: "for Friday", SavedAt: now},
	}
	s, adapter := newLookbookStore(fc)
	id := adapter.ToDisplayID("o1")

	require.NoError(t, s.SaveStyle(context.Background(), id, "f1", "for Friday"))
	require.Equal(t, "f1", fc.LastSaveFolder)
	require.Equal(t, "o1", fc.LastSaveOutfit)

	styles := s.SavedStyles()
	require.Len(t, styles, 1)
	require.Equal(t, id, styles[0].DisplayID)
}

func TestSaveStyle_RemoteFailureLeavesListUntouched(t *testing.T) {
	fc := &fakeClient{SaveStyleErr: errors.New("rejected")}
	s, adapter := newLookbookStore(fc)
	id := adapter.ToDisplayID("o1")

	require.Error(t, s.SaveStyle(context.Background(), id, "f1", ""))
	require.Empty(t, s.SavedStyles())
}

func TestRemoveStyle_RemovesFromFlattenedList(t *testing.T) {
	fc := &fakeClient{
		ListFoldersRet: []models.LookbookFolder{{ID: "f1"}},
		FolderStyles: map[string][]models.SavedStyle{
			"f1": {{OutfitID: "o1", FolderID: "f1"}, {OutfitID: "o2", FolderID: "f1"}},
		},
	}
	s, adapter := newLookbookStore(fc)
	require.NoError(t, s.Refresh(context.Background()))

	id := adapter.ToDisplayID("o1")
	require.NoError(t, s.RemoveStyle(context.Background(), id))

	require.Equal(t, "f1", fc.LastRemoveFolder)
	require.Equal(t, "o1", fc.LastRemoveOutfit)

	styles := s.SavedStyles()
	require.Len(t, styles, 1)
	require.Equal(t, "o2", styles[0].OutfitID)
}

func TestRemoveStyle_OutfitInSeveralFolders_RemovesOneCopy(t *testing.T) {
	fc := &fakeClient{
		ListFoldersRet: []models.LookbookFolder{{ID: "f1"}, {ID: "f2"}},
		FolderStyles: map[string][]models.SavedStyle{
			"f1": {{OutfitID: "o1", FolderID: "f1"}},
			"f2": {{OutfitID: "o1", FolderID: "f2"}},
		},
	}
	s, adapter := newLookbookStore(fc)
	require.NoError(t, s.Refresh(context.Background()))

	id := adapter.ToDisplayID("o1")
	require.NoError(t, s.RemoveStyle(context.Background(), id))
	require.Equal(t, 1, fc.RemoveStyleCalls)

	// one remote row was deleted, so exactly one local copy goes with it
	styles := s.SavedStyles()
	require.Len(t, styles, 1)
	require.Equal(t, "o1", styles[0].OutfitID)
	require.NotEqual(t, fc.LastRemoveFolder, styles[0].FolderID)
}

func TestDeleteFolder_CascadesInOneUpdate(t *testing.T) {
	fc := &fakeClient{
		ListFoldersRet: []models.LookbookFolder{{ID: "f1"}, {ID: "f2"}},
		FolderStyles: map[string][]models.SavedStyle{
			"f1": {{OutfitID: "o7", FolderID: "f1"}},
			"f2": {{OutfitID: "o9", FolderID: "f2"}},
		},
	}
	s, _ := newLookbookStore(fc)
	require.NoError(t, s.Refresh(context.Background()))

	require.NoError(t, s.DeleteFolder(context.Background(), "f1"))
	require.Equal(t, "f1", fc.LastDeletedFolder)

	folders := s.Folders()
	require.Len(t, folders, 1)
	require.Equal(t, "f2", folders[0].ID)

	styles := s.SavedStyles()
	require.Len(t, styles, 1)
	require.Equal(t, "f2", styles[0].FolderID)
	require.Equal(t, "o9", styles[0].OutfitID)
}

func TestDeleteFolder_RemoteFailureLeavesEverything(t *testing.T) {
	fc := &fakeClient{
		ListFoldersRet: []models.LookbookFolder{{ID: "f1"}},
		FolderStyles:   map[string][]models.SavedStyle{"f1": {{OutfitID: "o1", FolderID: "f1"}}},
	}
	s, _ := newLookbookStore(fc)
	require.NoError(t, s.Refresh(context.Background()))

	before := s.Folders()
	fc.DeleteFolderErr = errors.New("down")
	require.Error(t, s.DeleteFolder(context.Background(), "f1"))

	diff := cmp.Diff(before, s.Folders(), cmpopts.EquateEmpty())
	require.Empty(t, diff)
	require.Len(t, s.SavedStyles(), 1)
}

func TestCreateFolder_AppendsWithColorOnSuccessOnly(t *testing.T) {
	fc := &fakeClient{CreateFolderErr: errors.New("name taken")}
	s, _ := newLookbookStore(fc)

	_, err := s.CreateFolder(context.Background(), "Work")
	require.Error(t, err)
	require.Empty(t, s.Folders())

	fc.CreateFolderErr = nil
	fc.CreateFolderRet = &models.LookbookFolder{ID: "f1", Name: "Work"}
	folder, err := s.CreateFolder(context.Background(), "Work")
	require.NoError(t, err)
	require.Equal(t, folderPalette[0], folder.Color)
	require.Len(t, s.Folders(), 1)
}

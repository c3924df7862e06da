package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afristyle/afristyle/internal/client/storage"
	"github.com/afristyle/afristyle/internal/logging"
)

func TestLiked_LikeUnlikeToggle(t *testing.T) {
	store := setupHelper(t)
	ctx := context.Background()
	s := NewLikedStore(ctx, store, logging.NewDefault())

	s.Like(ctx, "p1")
	s.Like(ctx, "p1") // idempotent
	s.Like(ctx, "p2")
	require.Equal(t, []string{"p1", "p2"}, s.Items())
	require.True(t, s.IsLiked("p1"))

	s.Unlike(ctx, "p1")
	require.False(t, s.IsLiked("p1"))
	require.Equal(t, []string{"p2"}, s.Items())

	require.True(t, s.Toggle(ctx, "p3"))
	require.False(t, s.Toggle(ctx, "p3"))
	require.False(t, s.IsLiked("p3"))
}

func TestLiked_MutationsPersistThroughWatcher(t *testing.T) {
	store := setupHelper(t)
	ctx := context.Background()
	s := NewLikedStore(ctx, store, logging.NewDefault())

	s.Like(ctx, "p1")
	s.Like(ctx, "p2")
	s.Unlike(ctx, "p1")

	var persisted []string
	require.True(t, store.Load(ctx, storage.KeyLikedPosts, &persisted))
	require.Equal(t, []string{"p2"}, persisted)
}

func TestLiked_LoadsPersistedListOnStartup(t *testing.T) {
	store := setupHelper(t)
	ctx := context.Background()
	store.Save(ctx, storage.KeyLikedPosts, []string{"p1", "p2"})

	s := NewLikedStore(ctx, store, logging.NewDefault())
	require.Equal(t, []string{"p1", "p2"}, s.Items())
	require.True(t, s.IsLiked("p2"))
}

func TestLiked_ClearEmptiesAndPersists(t *testing.T) {
	store := setupHelper(t)
	ctx := context.Background()
	s := NewLikedStore(ctx, store, logging.NewDefault())

	s.Like(ctx, "p1")
	s.Clear(ctx)
	require.Empty(t, s.Items())

	var persisted []string
	require.True(t, store.Load(ctx, storage.KeyLikedPosts, &persisted))
	require.Empty(t, persisted)
}

func TestLiked_WatcherMayCallBackIntoStore(t *testing.T) {
	store := setupHelper(t)
	ctx := context.Background()
	s := NewLikedStore(ctx, store, logging.NewDefault())

	var sawLiked bool
	s.Watch(func(ctx context.Context, items []string) {
		sawLiked = s.IsLiked("p1")
	})

	s.Like(ctx, "p1")
	require.True(t, sawLiked)
}

func TestLiked_ExtraWatcherObservesChanges(t *testing.T) {
	store := setupHelper(t)
	ctx := context.Background()
	s := NewLikedStore(ctx, store, logging.NewDefault())

	var seen [][]string
	s.Watch(func(_ context.Context, items []string) {
		seen = append(seen, items)
	})

	s.Like(ctx, "p1")
	s.Like(ctx, "p2")
	require.Len(t, seen, 2)
	require.Equal(t, []string{"p1", "p2"}, seen[1])
}

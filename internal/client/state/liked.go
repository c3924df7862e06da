package state

import (
	"context"
	"sync"

	"github.com/afristyle/afristyle/internal/client/storage"
	"github.com/afristyle/afristyle/internal/logging"
)

// LikedStore is the one container with no remote backing: the liked-posts
// list lives exclusively in local storage. Mutations are optimistic — they
// update in-memory state synchronously — and persistence happens as a side
// effect through a change watcher, not inside the mutation itself.
type LikedStore struct {
	mu    sync.Mutex
	log   logging.Logger
	items []string

	watchers []func(ctx context.Context, items []string)
}

// NewLikedStore loads the persisted list (defaulting to empty) and registers
// the write-through watcher.
func NewLikedStore(ctx context.Context, store *storage.Helper, log logging.Logger) *LikedStore {
	s := &LikedStore{
		log:   log.With("component", "liked"),
		items: []string{},
	}
	store.Load(ctx, storage.KeyLikedPosts, &s.items)

	s.Watch(func(ctx context.Context, items []string) {
		store.Save(ctx, storage.KeyLikedPosts, items)
	})
	return s
}

// Watch registers fn to run after every state change with a copy of the new
// list.
func (s *LikedStore) Watch(fn func(ctx context.Context, items []string)) {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

// Like adds postID to the list. No-op if already present.
func (s *LikedStore) Like(ctx context.Context, postID string) {
	s.mu.Lock()
	for _, id := range s.items {
		if id == postID {
			s.mu.Unlock()
			return
		}
	}
	s.items = append(s.items, postID)
	items, watchers := s.snapshotLocked()
	s.mu.Unlock()
	notify(ctx, watchers, items)
}

// Unlike removes postID from the list. No-op if absent.
func (s *LikedStore) Unlike(ctx context.Context, postID string) {
	s.mu.Lock()
	for i, id := range s.items {
		if id == postID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			items, watchers := s.snapshotLocked()
			s.mu.Unlock()
			notify(ctx, watchers, items)
			return
		}
	}
	s.mu.Unlock()
}

// Toggle likes the post if unliked and vice versa, returning the new state.
func (s *LikedStore) Toggle(ctx context.Context, postID string) bool {
	if s.IsLiked(postID) {
		s.Unlike(ctx, postID)
		return false
	}
	s.Like(ctx, postID)
	return true
}

// Clear empties the list.
func (s *LikedStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = []string{}
	items, watchers := s.snapshotLocked()
	s.mu.Unlock()
	notify(ctx, watchers, items)
}

func (s *LikedStore) IsLiked(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.items {
		if id == postID {
			return true
		}
	}
	return false
}

func (s *LikedStore) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// snapshotLocked copies the list and the watcher set so notification can run
// after the lock is released; watchers may call back into the store.
func (s *LikedStore) snapshotLocked() ([]string, []func(ctx context.Context, items []string)) {
	items := make([]string, len(s.items))
	copy(items, s.items)
	watchers := make([]func(ctx context.Context, items []string), len(s.watchers))
	copy(watchers, s.watchers)
	return items, watchers
}

func notify(ctx context.Context, watchers []func(ctx context.Context, items []string), items []string) {
	for _, fn := range watchers {
		fn(ctx, items)
	}
}

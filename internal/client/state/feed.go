package state

import (
	"context"
	"sync"

	"github.com/afristyle/afristyle/internal/client/api"
	"github.com/afristyle/afristyle/internal/client/display"
	"github.com/afristyle/afristyle/internal/client/models"
	"github.com/afristyle/afristyle/internal/logging"
)

// FeedStore caches the outfit feed. Refresh replaces the items wholesale on
// success; on failure the stale items stay visible and the error is
// recorded. Every fetched outfit is registered with the display adapter so
// the UI can key it and later mutations can resolve it back.
type FeedStore struct {
	mu      sync.Mutex
	client  api.Client
	display *display.Adapter
	log     logging.Logger

	items   []models.Outfit
	total   int
	loading bool
	lastErr error
}

func NewFeedStore(client api.Client, adapter *display.Adapter, log logging.Logger) *FeedStore {
	return &FeedStore{
		client:  client,
		display: adapter,
		log:     log.With("component", "feed"),
	}
}

func (s *FeedStore) Refresh(ctx context.Context, filter *models.ListFilter) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	outfits, total, err := s.client.ListOutfits(ctx, filter)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.log.Error(ctx, "feed refresh failed", "error", err)
		return err
	}

	for _, outfit := range outfits {
		s.display.ToDisplayID(outfit.ID)
	}

	s.mu.Lock()
	s.items = outfits
	s.total = total
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// DisplayID returns the session key for an outfit already in the feed.
func (s *FeedStore) DisplayID(outfitID string) int32 {
	return s.display.ToDisplayID(outfitID)
}

func (s *FeedStore) Items() []models.Outfit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Outfit, len(s.items))
	copy(out, s.items)
	return out
}

func (s *FeedStore) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *FeedStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *FeedStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

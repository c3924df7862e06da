package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/afristyle/afristyle/internal/client/models"
)

// Browse refreshes the outfit feed (optionally filtered by category) and
// prints each item with its style #.
func (a *App) Browse(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category slug (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	var filter *models.ListFilter
	if category != "" {
		filter = &models.ListFilter{Category: &category}
	}

	if err := a.feed.Refresh(ctx, filter); err != nil {
		a.log.Error(ctx, "browse failed", "error", err)
		if len(a.feed.Items()) > 0 {
			printlnFn("Could not refresh; showing cached results.")
		} else {
			return err
		}
	}

	for _, outfit := range a.feed.Items() {
		liked := " "
		if a.liked.IsLiked(outfit.ID) {
			liked = "♥"
		}
		printlnFn(fmt.Sprintf("#%d %s %s — %s (%d likes)",
			a.feed.DisplayID(outfit.ID), liked, outfit.Title, outfit.Designer, outfit.Likes))
	}
	printlnFn(fmt.Sprintf("%d of %d outfits", len(a.feed.Items()), a.feed.Total()))
	return nil
}

// ShowOutfit prompts for a style # and prints the outfit detail.
func (a *App) ShowOutfit(ctx context.Context) error {
	id, err := getDisplayID(a.reader, "Style #", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	outfitID, ok := a.adapter.FromDisplayID(id)
	if !ok {
		printlnFn("Unknown style #; run 'browse' first.")
		return nil
	}

	outfit, err := a.client.GetOutfit(ctx, outfitID)
	if err != nil {
		a.log.Error(ctx, "show outfit failed", "outfit", outfitID, "error", err)
		return err
	}

	printlnFn(outfit.Title)
	printlnFn("  by", outfit.Designer)
	printlnFn("  category:", outfit.Category)
	printlnFn("  likes:", outfit.Likes)
	if outfit.Description != "" {
		printlnFn(outfit.Description)
	}
	if outfit.ImageURL != "" {
		printlnFn("  image:", outfit.ImageURL)
	}
	return nil
}

// Like marks the outfit behind a style # as liked. Local-only.
func (a *App) Like(ctx context.Context) error {
	id, err := getDisplayID(a.reader, "Style #", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	outfitID, ok := a.adapter.FromDisplayID(id)
	if !ok {
		printlnFn("Unknown style #; run 'browse' first.")
		return nil
	}

	a.liked.Like(ctx, outfitID)
	printlnFn("Liked.")
	return nil
}

// Unlike removes the like on the outfit behind a style #.
func (a *App) Unlike(ctx context.Context) error {
	id, err := getDisplayID(a.reader, "Style #", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	outfitID, ok := a.adapter.FromDisplayID(id)
	if !ok {
		printlnFn("Unknown style #; run 'browse' first.")
		return nil
	}

	a.liked.Unlike(ctx, outfitID)
	printlnFn("Unliked.")
	return nil
}

// Liked lists the liked outfit ids.
func (a *App) Liked(ctx context.Context) error {
	items := a.liked.Items()
	if len(items) == 0 {
		printlnFn("No liked styles yet.")
		return nil
	}
	for _, id := range items {
		printlnFn(fmt.Sprintf("#%d %s", a.adapter.ToDisplayID(id), id))
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/afristyle/afristyle/internal/common"
)

// Folders refreshes the lookbook and prints each folder with its saved
// styles.
func (a *App) Folders(ctx context.Context) error {
	if err := a.lookbook.Refresh(ctx); err != nil {
		a.log.Error(ctx, "lookbook refresh failed", "error", err)
		if len(a.lookbook.Folders()) > 0 {
			printlnFn("Could not refresh; showing cached folders.")
		} else {
			return err
		}
	}

	folders := a.lookbook.Folders()
	if len(folders) == 0 {
		printlnFn("No folders yet; create one with 'newfolder'.")
		return nil
	}

	for _, folder := range folders {
		styles := a.lookbook.StylesInFolder(folder.ID)
		printlnFn(fmt.Sprintf("%s [%s] (%d styles)", folder.Name, folder.ID, len(styles)))
		for _, style := range styles {
			line := fmt.Sprintf("  #%d %s", style.DisplayID, style.OutfitID)
			if style.Notes != "" {
				line += " — " + style.Notes
			}
			printlnFn(line)
		}
	}
	return nil
}

// NewFolder prompts for a name and creates a folder.
func (a *App) NewFolder(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Folder name", os.Stdout)
	if err != nil {
		return err
	}

	folder, err := a.lookbook.CreateFolder(ctx, name)
	if err != nil {
		a.log.Error(ctx, "create folder failed", "error", err)
		return err
	}

	printlnFn("Created", folder.Name, "["+folder.ID+"]")
	return nil
}

// DeleteFolder prompts for a folder id and deletes it along with its saved
// styles.
func (a *App) DeleteFolder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Folder id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.lookbook.DeleteFolder(ctx, id); err != nil {
		a.log.Error(ctx, "delete folder failed", "folder", id, "error", err)
		return err
	}

	printlnFn("Deleted.")
	return nil
}

// SaveStyle prompts for a style #, a target folder and optional notes, then
// saves the outfit into the folder.
func (a *App) SaveStyle(ctx context.Context) error {
	id, err := getDisplayID(a.reader, "Style #", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	folderID, err := getSimpleText(a.reader, "Folder id", os.Stdout)
	if err != nil {
		return err
	}

	notes, err := GetMultiline(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.lookbook.SaveStyle(ctx, id, folderID, notes); err != nil {
		if errors.Is(err, common.ErrUnknownDisplayID) {
			printlnFn("Unknown style #; run 'browse' first.")
			return nil
		}
		a.log.Error(ctx, "save style failed", "error", err)
		return err
	}

	printlnFn("Saved.")
	return nil
}

// RemoveStyle prompts for a style # and removes it from its folder.
func (a *App) RemoveStyle(ctx context.Context) error {
	id, err := getDisplayID(a.reader, "Style #", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.lookbook.RemoveStyle(ctx, id); err != nil {
		if errors.Is(err, common.ErrUnknownDisplayID) {
			printlnFn("Unknown style #; run 'browse' first.")
			return nil
		}
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("That style is not saved in any folder.")
			return nil
		}
		a.log.Error(ctx, "remove style failed", "error", err)
		return err
	}

	printlnFn("Removed.")
	return nil
}

package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/afristyle/afristyle/internal/client/storage"
)

// Backup prompts for a file path and writes a JSON snapshot of the local
// data (session, lookbook cache, likes, settings) to it.
func (a *App) Backup(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Backup file path", os.Stdout)
	if err != nil {
		return err
	}

	snapshot, err := a.store.Backup(ctx)
	if err != nil {
		a.log.Error(ctx, "backup failed", "error", err)
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		a.log.Error(ctx, "backup write failed", "path", path, "error", err)
		return err
	}

	printlnFn("Backed up", len(snapshot.Entries), "entries to", path)
	return nil
}

// Restore prompts for a snapshot file and writes its entries back into the
// local store. Keys outside the known backup set are skipped.
func (a *App) Restore(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Snapshot file path", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.log.Error(ctx, "restore read failed", "path", path, "error", err)
		return err
	}

	var snapshot storage.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		a.log.Error(ctx, "restore parse failed", "path", path, "error", err)
		return err
	}

	if err := a.store.Restore(ctx, &snapshot); err != nil {
		a.log.Error(ctx, "restore failed", "error", err)
		return err
	}

	printlnFn("Restored", len(snapshot.Entries), "entries. Restart to pick up the session.")
	return nil
}

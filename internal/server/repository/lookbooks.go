package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/dbx"
	"github.com/afristyle/afristyle/internal/server/models"
)

type LookbookRepository interface {
	ListFolders(ctx context.Context, userID string) ([]*models.LookbookFolder, error)
	GetFolder(ctx context.Context, userID, folderID string) (*models.LookbookFolder, error)
	CreateFolder(ctx context.Context, folder *models.LookbookFolder) (*models.LookbookFolder, error)
	DeleteFolder(ctx context.Context, userID, folderID string) error
	ListStyles(ctx context.Context, folderID string) ([]*models.SavedStyle, error)
	SaveStyle(ctx context.Context, style *models.SavedStyle) (*models.SavedStyle, error)
	RemoveStyle(ctx context.Context, folderID, outfitID string) error
}

type PostgresLookbookRepository struct {
	db dbx.DBTX
}

func NewPostgresLookbookRepository(db dbx.DBTX) *PostgresLookbookRepository {
	return &PostgresLookbookRepository{db: db}
}

func (r *PostgresLookbookRepository) ListFolders(ctx context.Context, userID string) ([]*models.LookbookFolder, error) {
	query :=
		`SELECT id, user_id, name, created_at FROM lookbook_folders
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var folders []*models.LookbookFolder
	for rows.Next() {
		folder := &models.LookbookFolder{}
		if err := rows.Scan(&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return folders, nil
}

func (r *PostgresLookbookRepository) GetFolder(ctx context.Context, userID, folderID string) (*models.LookbookFolder, error) {
	query :=
		`SELECT id, user_id, name, created_at FROM lookbook_folders
		 WHERE user_id = $1 AND id = $2
		 `

	folder := &models.LookbookFolder{}
	err := r.db.QueryRowContext(ctx, query, userID, folderID).Scan(
		&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return folder, nil
}

func (r *PostgresLookbookRepository) CreateFolder(ctx context.Context, folder *models.LookbookFolder) (*models.LookbookFolder, error) {

	query :=
		`INSERT INTO lookbook_folders (user_id, name)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		folder.UserID, folder.Name).Scan(&folder.ID, &folder.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return folder, nil
}

// DeleteFolder removes the folder; saved styles go with it via ON DELETE
// CASCADE. Deleting someone else's folder reports ErrNotFound.
func (r *PostgresLookbookRepository) DeleteFolder(ctx context.Context, userID, folderID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM lookbook_folders WHERE user_id = $1 AND id = $2", userID, folderID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresLookbookRepository) ListStyles(ctx context.Context, folderID string) ([]*models.SavedStyle, error) {
	query :=
		`SELECT folder_id, outfit_id, notes, saved_at FROM saved_styles
		 WHERE folder_id = $1
		 ORDER BY saved_at
		 `

	rows, err := r.db.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var styles []*models.SavedStyle
	for rows.Next() {
		style := &models.SavedStyle{}
		if err := rows.Scan(&style.FolderID, &style.OutfitID, &style.Notes, &style.SavedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		styles = append(styles, style)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return styles, nil
}

func (r *PostgresLookbookRepository) SaveStyle(ctx context.Context, style *models.SavedStyle) (*models.SavedStyle, error) {

	query :=
		`INSERT INTO saved_styles (folder_id, outfit_id, notes)
         VALUES ($1, $2, $3)
		 ON CONFLICT (folder_id, outfit_id) DO UPDATE SET notes = EXCLUDED.notes
		 RETURNING saved_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		style.FolderID, style.OutfitID, style.Notes).Scan(&style.SavedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return style, nil
}

func (r *PostgresLookbookRepository) RemoveStyle(ctx context.Context, folderID, outfitID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM saved_styles WHERE folder_id = $1 AND outfit_id = $2", folderID, outfitID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

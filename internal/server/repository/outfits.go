package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/dbx"
	"github.com/afristyle/afristyle/internal/server/models"
)

// OutfitQuery narrows and paginates outfit listings. Zero values mean "no
// constraint"; Limit 0 falls back to a server-side default.
type OutfitQuery struct {
	Category string
	Status   string
	Search   string
	Limit    int
	Offset   int
}

type OutfitRepository interface {
	List(ctx context.Context, q OutfitQuery) ([]*models.Outfit, int, error)
	GetByID(ctx context.Context, id string) (*models.Outfit, error)
	Create(ctx context.Context, outfit *models.Outfit) (*models.Outfit, error)
}

type PostgresOutfitRepository struct {
	db dbx.DBTX
}

func NewPostgresOutfitRepository(db dbx.DBTX) *PostgresOutfitRepository {
	return &PostgresOutfitRepository{db: db}
}

const defaultPageSize = 20

func (r *PostgresOutfitRepository) List(ctx context.Context, q OutfitQuery) ([]*models.Outfit, int, error) {

	where := []string{"1=1"}
	args := []any{}

	if q.Category != "" {
		args = append(args, q.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if q.Status != "" {
		args = append(args, q.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR designer ILIKE $%d)", len(args), len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT count(*) FROM outfits WHERE " + cond
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	args = append(args, limit)
	limitClause := fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, q.Offset)
	limitClause += fmt.Sprintf(" OFFSET $%d", len(args))

	query := `SELECT id, title, description, category, image_key, designer, likes, status, created_at
		 FROM outfits WHERE ` + cond + limitClause

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var outfits []*models.Outfit
	for rows.Next() {
		outfit := &models.Outfit{}
		if err := rows.Scan(&outfit.ID, &outfit.Title, &outfit.Description, &outfit.Category,
			&outfit.ImageKey, &outfit.Designer, &outfit.Likes, &outfit.Status, &outfit.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		outfits = append(outfits, outfit)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return outfits, total, nil
}

func (r *PostgresOutfitRepository) GetByID(ctx context.Context, id string) (*models.Outfit, error) {
	query :=
		`SELECT id, title, description, category, image_key, designer, likes, status, created_at
		 FROM outfits WHERE id = $1
		 `

	outfit := &models.Outfit{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&outfit.ID, &outfit.Title, &outfit.Description,
		&outfit.Category, &outfit.ImageKey, &outfit.Designer, &outfit.Likes, &outfit.Status, &outfit.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return outfit, nil
}

func (r *PostgresOutfitRepository) Create(ctx context.Context, outfit *models.Outfit) (*models.Outfit, error) {

	query :=
		`INSERT INTO outfits (title, description, category, image_key, designer, status)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		outfit.Title, outfit.Description, outfit.Category, outfit.ImageKey,
		outfit.Designer, outfit.Status).Scan(&outfit.ID, &outfit.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return outfit, nil
}

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

type BlogRepository interface {
	List(ctx context.Context, limit, offset int) ([]*models.BlogPost, int, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type PostgresBlogRepository struct {
	db dbx.DBTX
}

func NewPostgresBlogRepository(db dbx.DBTX) *PostgresBlogRepository {
	return &PostgresBlogRepository{db: db}
}

func (r *PostgresBlogRepository) List(ctx context.Context, limit, offset int) ([]*models.BlogPost, int, error) {

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM blog_posts").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	if limit <= 0 {
		limit = defaultPageSize
	}

	query :=
		`SELECT id, title, excerpt, body, author, cover_url, published_at FROM blog_posts
		 ORDER BY published_at DESC
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post := &models.BlogPost{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Excerpt, &post.Body,
			&post.Author, &post.CoverURL, &post.PublishedAt); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return posts, total, nil
}

func (r *PostgresBlogRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	query :=
		`SELECT id, title, excerpt, body, author, cover_url, published_at FROM blog_posts
		 WHERE id = $1
		 `

	post := &models.BlogPost{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.Title, &post.Excerpt,
		&post.Body, &post.Author, &post.CoverURL, &post.PublishedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresBlogRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, slug FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return categories, nil
}

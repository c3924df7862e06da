// Package repository implements Postgres persistence for the AfriStyle
// backend. Each entity gets a small interface plus a Postgres implementation
// over dbx.DBTX, so services can run repos inside transactions.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/afristyle/afristyle/internal/server/migrations"
)

// Manager owns the database handle and hands out repositories.
type Manager struct {
	db *sql.DB

	users     *PostgresUserRepository
	outfits   *PostgresOutfitRepository
	blogs     *PostgresBlogRepository
	lookbooks *PostgresLookbookRepository
}

func (m *Manager) Conn() *sql.DB { return m.db }
func (m *Manager) Users() UserRepository { return m.users }
func (m *Manager) Outfits() OutfitRepository { return m.outfits }
func (m *Manager) Blogs() BlogRepository { return m.blogs }
func (m *Manager) Lookbooks() LookbookRepository { return m.lookbooks }
func (m *Manager) Close() error { return m.db.Close() }
func (m *Manager) Ping(ctx context.Context) error { return m.db.PingContext(ctx) }

func (m *Manager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

// NewManager opens the database, builds the repositories and applies pending
// migrations.
func NewManager(dsn string) (*Manager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &Manager{
		db:        db,
		users:     NewPostgresUserRepository(db),
		outfits:   NewPostgresOutfitRepository(db),
		blogs:     NewPostgresBlogRepository(db),
		lookbooks: NewPostgresLookbookRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

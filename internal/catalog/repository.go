package catalog

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Repository reads the price list from a SQLite database.
type Repository struct {
	db *sql.DB
}

// RepoInterface is what the Loader needs from a price store
type RepoInterface interface {
	ListPrices(ctx context.Context) ([]Entry, error)
}

func NewRepository(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

// RunMigrations applies the embedded schema and seed migrations.
func (r *Repository) RunMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not create migration source: %w", err)
	}

	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *Repository) ListPrices(ctx context.Context) ([]Entry, error) {
	query := `
		SELECT item_type, unit_price
		FROM prices
		ORDER BY item_type
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ItemType, &e.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

func (r *Repository) GetPrice(ctx context.Context, itemType string) (Entry, error) {
	query := `
		SELECT item_type, unit_price
		FROM prices
		WHERE item_type = ?
	`

	var e Entry
	err := r.db.QueryRowContext(ctx, query, itemType).Scan(&e.ItemType, &e.UnitPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrItemNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to query price: %w", err)
	}
	return e, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

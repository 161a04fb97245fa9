package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aya-alharazin/ngofixtures/internal/dataset"
)

// SQLiteClient manages the connection to SQLite
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient creates a new SQLite client
func NewSQLiteClient(ctx context.Context, path string) (*SQLiteClient, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// Close closes the database connection
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// DB returns the underlying database connection
func (c *SQLiteClient) DB() *sql.DB {
	return c.db
}

// Seed recreates the dataset's table and inserts all rows. Dates are
// stored as ISO text since SQLite has no native date type.
func (c *SQLiteClient) Seed(ctx context.Context, d *dataset.Dataset) error {
	return seedSQL(ctx, c.db, d, sqliteDialect)
}

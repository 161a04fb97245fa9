package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/aya-alharazin/ngofixtures/internal/dataset"
)

// MySQLClient manages the connection to MySQL
type MySQLClient struct {
	db *sql.DB
}

// NewMySQLClient creates a new MySQL client
func NewMySQLClient(ctx context.Context, connString string) (*MySQLClient, error) {
	db, err := sql.Open("mysql", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MySQLClient{db: db}, nil
}

// Close closes the database connection
func (c *MySQLClient) Close() error {
	return c.db.Close()
}

// DB returns the underlying database connection
func (c *MySQLClient) DB() *sql.DB {
	return c.db
}

// Seed recreates the dataset's table and inserts all rows
func (c *MySQLClient) Seed(ctx context.Context, d *dataset.Dataset) error {
	return seedSQL(ctx, c.db, d, mysqlDialect)
}

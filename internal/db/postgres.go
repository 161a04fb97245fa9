package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aya-alharazin/ngofixtures/internal/dataset"
)

// PostgresClient manages the connection to PostgreSQL
type PostgresClient struct {
	conn *pgx.Conn
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(ctx context.Context, connString string) (*PostgresClient, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresClient{conn: conn}, nil
}

// Close closes the database connection
func (c *PostgresClient) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

// Conn returns the underlying connection
func (c *PostgresClient) Conn() *pgx.Conn {
	return c.conn
}

// Seed recreates the dataset's table and bulk-loads all rows via the
// COPY protocol, which keeps the 100,000-row datasets fast.
func (c *PostgresClient) Seed(ctx context.Context, d *dataset.Dataset) error {
	if _, err := c.conn.Exec(ctx, dropTableDDL(d, postgresDialect)); err != nil {
		return fmt.Errorf("drop table %s: %w", d.Name, err)
	}
	if _, err := c.conn.Exec(ctx, createTableDDL(d, postgresDialect)); err != nil {
		return fmt.Errorf("create table %s: %w", d.Name, err)
	}

	columns := d.Header()
	rows := make([][]any, d.Rows())
	for i := range rows {
		vals := make([]any, len(d.Columns))
		for j, col := range d.Columns {
			vals[j] = col.Cells[i].Value()
		}
		rows[i] = vals
	}

	copied, err := c.conn.CopyFrom(ctx, pgx.Identifier{d.Name}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", d.Name, err)
	}
	if copied != int64(len(rows)) {
		return fmt.Errorf("copy into %s: wrote %d of %d rows", d.Name, copied, len(rows))
	}
	return nil
}

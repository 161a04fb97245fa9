package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aya-alharazin/ngofixtures/internal/dataset"
)

// Seeder loads generated datasets into a live database, one table per
// dataset. Existing tables with the same name are dropped first.
type Seeder interface {
	Seed(ctx context.Context, d *dataset.Dataset) error
}

type dialect struct {
	quote     string // identifier quote character
	intType   string
	floatType string
	textType  string
	dateType  string
}

var (
	postgresDialect = dialect{`"`, "BIGINT", "DOUBLE PRECISION", "TEXT", "DATE"}
	mysqlDialect    = dialect{"`", "BIGINT", "DOUBLE", "TEXT", "DATE"}
	// SQLite has no native date type; dates are stored as ISO text.
	sqliteDialect = dialect{`"`, "INTEGER", "REAL", "TEXT", "TEXT"}
)

func (dl dialect) quoteIdent(name string) string {
	return dl.quote + name + dl.quote
}

func (dl dialect) columnType(k dataset.Kind) string {
	switch k {
	case dataset.KindInt:
		return dl.intType
	case dataset.KindFloat:
		return dl.floatType
	case dataset.KindDate:
		return dl.dateType
	default:
		return dl.textType
	}
}

// createTableDDL builds the CREATE TABLE statement for a dataset.
// Column names keep their exact casing, so they are always quoted.
func createTableDDL(d *dataset.Dataset, dl dialect) string {
	cols := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		cols[i] = fmt.Sprintf("%s %s", dl.quoteIdent(col.Name), dl.columnType(col.Kind))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", dl.quoteIdent(d.Name), strings.Join(cols, ", "))
}

func dropTableDDL(d *dataset.Dataset, dl dialect) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", dl.quoteIdent(d.Name))
}

// insertBatchSize bounds the number of rows per INSERT statement so
// the 100,000-row datasets stay under driver placeholder limits.
const insertBatchSize = 500

// rowValues returns row i as driver arguments. Date cells go over the
// wire as ISO text, which every supported database/sql driver accepts
// for its date column type.
func rowValues(d *dataset.Dataset, i int) []any {
	vals := make([]any, len(d.Columns))
	for j, col := range d.Columns {
		cell := col.Cells[i]
		if col.Kind == dataset.KindDate && !cell.IsMissing() {
			vals[j] = cell.Render()
			continue
		}
		vals[j] = cell.Value()
	}
	return vals
}

// seedSQL recreates the dataset's table and inserts all rows through a
// database/sql connection, batching rows into multi-row INSERTs inside
// a single transaction.
func seedSQL(ctx context.Context, sqlDB *sql.DB, d *dataset.Dataset, dl dialect) error {
	if _, err := sqlDB.ExecContext(ctx, dropTableDDL(d, dl)); err != nil {
		return fmt.Errorf("drop table %s: %w", d.Name, err)
	}
	if _, err := sqlDB.ExecContext(ctx, createTableDDL(d, dl)); err != nil {
		return fmt.Errorf("create table %s: %w", d.Name, err)
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction for %s: %w", d.Name, err)
	}

	quoted := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		quoted[i] = dl.quoteIdent(col.Name)
	}
	prefix := fmt.Sprintf("INSERT INTO %s (%s) VALUES ",
		dl.quoteIdent(d.Name), strings.Join(quoted, ", "))
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(d.Columns)), ",") + ")"

	rows := d.Rows()
	for start := 0; start < rows; start += insertBatchSize {
		end := start + insertBatchSize
		if end > rows {
			end = rows
		}

		var sb strings.Builder
		sb.WriteString(prefix)
		args := make([]any, 0, (end-start)*len(d.Columns))
		for i := start; i < end; i++ {
			if i > start {
				sb.WriteString(", ")
			}
			sb.WriteString(placeholder)
			args = append(args, rowValues(d, i)...)
		}

		if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert rows %d-%d into %s: %w", start, end, d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", d.Name, err)
	}
	return nil
}

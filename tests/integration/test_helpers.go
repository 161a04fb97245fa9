//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/aya-alharazin/ngofixtures/internal/dataset"
)

// buildDataset constructs one dataset with a fixed seed, failing the
// test on unknown names or invalid specifications
func buildDataset(t *testing.T, name string, rows int) *dataset.Dataset {
	t.Helper()

	d, err := dataset.Build(name, rand.New(rand.NewPCG(1, 1)), rows)
	if err != nil {
		t.Fatalf("Failed to build dataset %s: %v", name, err)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Dataset %s failed validation: %v", name, err)
	}
	return d
}

// verifyRowCount checks the seeded table holds exactly the dataset's rows
func verifyRowCount(ctx context.Context, t *testing.T, db *sql.DB, d *dataset.Dataset) {
	t.Helper()

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, d.Name)
	if err := db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", d.Name, err)
	}
	if count != d.Rows() {
		t.Errorf("Expected %d rows in %s, got %d", d.Rows(), d.Name, count)
	}
}

// verifyNullCount checks the number of NULLs in a column matches the
// dataset's missing-marker count
func verifyNullCount(ctx context.Context, t *testing.T, db *sql.DB, d *dataset.Dataset, column string) {
	t.Helper()

	want := 0
	col := d.Column(column)
	if col == nil {
		t.Fatalf("Column %s not found in dataset %s", column, d.Name)
	}
	for _, cell := range col.Cells {
		if cell.IsMissing() {
			want++
		}
	}

	var got int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s" WHERE "%s" IS NULL`, d.Name, column)
	if err := db.QueryRowContext(ctx, query).Scan(&got); err != nil {
		t.Fatalf("Failed to count NULLs in %s.%s: %v", d.Name, column, err)
	}
	if got != want {
		t.Errorf("Expected %d NULLs in %s.%s, got %d", want, d.Name, column, got)
	}
}

//go:build integration
// +build integration

package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aya-alharazin/ngofixtures/internal/db"
)

func TestSQLiteSeeding(t *testing.T) {
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "fixtures.db")
	client, err := db.NewSQLiteClient(ctx, dbPath)
	if err != nil {
		t.Fatalf("Failed to connect to SQLite: %v", err)
	}
	defer client.Close()

	missing := buildDataset(t, "beneficiary_data_missing", 0)
	if err := client.Seed(ctx, missing); err != nil {
		t.Fatalf("Failed to seed %s: %v", missing.Name, err)
	}

	verifyRowCount(ctx, t, client.DB(), missing)
	verifyNullCount(ctx, t, client.DB(), missing, "Age")
	verifyNullCount(ctx, t, client.DB(), missing, "AssistanceType")

	// String cells keep their whitespace through the driver.
	items := buildDataset(t, "item_data", 0)
	if err := client.Seed(ctx, items); err != nil {
		t.Fatalf("Failed to seed %s: %v", items.Name, err)
	}

	var item string
	row := client.DB().QueryRowContext(ctx, `SELECT "Item" FROM "item_data" WHERE "Quantity" = '10'`)
	if err := row.Scan(&item); err != nil {
		t.Fatalf("Failed to read item row: %v", err)
	}
	if item != "   apple" {
		t.Errorf("Expected leading whitespace preserved, got %q", item)
	}

	// Re-seeding drops and recreates the table.
	if err := client.Seed(ctx, missing); err != nil {
		t.Fatalf("Failed to re-seed %s: %v", missing.Name, err)
	}
	verifyRowCount(ctx, t, client.DB(), missing)
}

func TestSQLiteSeedsLargeDataset(t *testing.T) {
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "fixtures.db")
	client, err := db.NewSQLiteClient(ctx, dbPath)
	if err != nil {
		t.Fatalf("Failed to connect to SQLite: %v", err)
	}
	defer client.Close()

	// A reduced row count keeps the test quick while still spanning
	// many insert batches.
	large := buildDataset(t, "large_country_data", 5000)
	if err := client.Seed(ctx, large); err != nil {
		t.Fatalf("Failed to seed %s: %v", large.Name, err)
	}
	verifyRowCount(ctx, t, client.DB(), large)

	var bad int
	query := `SELECT COUNT(*) FROM "large_country_data"
		WHERE julianday("ReportDate") - julianday("EventDate") NOT BETWEEN 1 AND 29`
	if err := client.DB().QueryRowContext(ctx, query).Scan(&bad); err != nil {
		t.Fatalf("Failed to check report offsets: %v", err)
	}
	if bad != 0 {
		t.Errorf("Expected all report offsets in [1, 29] days, found %d outside", bad)
	}
}

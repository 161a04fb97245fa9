//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/aya-alharazin/ngofixtures/internal/db"
)

func TestPostgresSeeding(t *testing.T) {
	ctx := context.Background()

	connString := os.Getenv("POSTGRES_TEST_URL")
	if connString == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	client, err := db.NewPostgresClient(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer client.Close(ctx)

	health := buildDataset(t, "health_data", 0)
	if err := client.Seed(ctx, health); err != nil {
		t.Fatalf("Failed to seed %s: %v", health.Name, err)
	}

	var count int
	row := client.Conn().QueryRow(ctx, `SELECT COUNT(*) FROM "health_data"`)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != health.Rows() {
		t.Errorf("Expected %d rows, got %d", health.Rows(), count)
	}

	// The Flu derivation must survive into the database as NULLs.
	var fluWithMedication int
	row = client.Conn().QueryRow(ctx,
		`SELECT COUNT(*) FROM "health_data" WHERE "Diagnosis" = 'Flu' AND "Medication" IS NOT NULL`)
	if err := row.Scan(&fluWithMedication); err != nil {
		t.Fatalf("Failed to check Flu rows: %v", err)
	}
	if fluWithMedication != 0 {
		t.Errorf("Expected no Flu rows with medication, got %d", fluWithMedication)
	}

	// CopyFrom path with date columns and a non-trivial row count.
	large := buildDataset(t, "large_country_data", 5000)
	if err := client.Seed(ctx, large); err != nil {
		t.Fatalf("Failed to seed %s: %v", large.Name, err)
	}

	var bad int
	row = client.Conn().QueryRow(ctx,
		`SELECT COUNT(*) FROM "large_country_data" WHERE "ReportDate" - "EventDate" NOT BETWEEN 1 AND 29`)
	if err := row.Scan(&bad); err != nil {
		t.Fatalf("Failed to check report offsets: %v", err)
	}
	if bad != 0 {
		t.Errorf("Expected all report offsets in [1, 29] days, found %d outside", bad)
	}
}

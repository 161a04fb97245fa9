//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/aya-alharazin/ngofixtures/internal/db"
)

func TestMySQLSeeding(t *testing.T) {
	ctx := context.Background()

	connString := os.Getenv("MYSQL_TEST_URL")
	if connString == "" {
		t.Skip("MYSQL_TEST_URL not set")
	}

	client, err := db.NewMySQLClient(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect to MySQL: %v", err)
	}
	defer client.Close()

	updates := buildDataset(t, "project_updates", 0)
	if err := client.Seed(ctx, updates); err != nil {
		t.Fatalf("Failed to seed %s: %v", updates.Name, err)
	}

	var count int
	row := client.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM `project_updates`")
	if err := row.Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != updates.Rows() {
		t.Errorf("Expected %d rows, got %d", updates.Rows(), count)
	}

	var nullStatuses int
	row = client.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM `project_updates` WHERE `Status` IS NULL")
	if err := row.Scan(&nullStatuses); err != nil {
		t.Fatalf("Failed to count NULL statuses: %v", err)
	}
	if nullStatuses != 2 {
		t.Errorf("Expected 2 NULL statuses, got %d", nullStatuses)
	}
}

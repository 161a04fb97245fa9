package db

import (
	"testing"
	"time"

	"github.com/aya-alharazin/ngofixtures/internal/dataset"
)

func ddlDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Name: "sample",
		Columns: []dataset.Column{
			{Name: "ID", Kind: dataset.KindInt, Cells: []dataset.Cell{dataset.Int(1)}},
			{Name: "Rate", Kind: dataset.KindFloat, Cells: []dataset.Cell{dataset.Float(0.15)}},
			{Name: "Label", Kind: dataset.KindString, Cells: []dataset.Cell{dataset.Missing()}},
			{Name: "When", Kind: dataset.KindDate, Cells: []dataset.Cell{
				dataset.Date(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)),
			}},
		},
	}
}

func TestCreateTableDDL(t *testing.T) {
	tests := []struct {
		name    string
		dialect dialect
		want    string
	}{
		{
			name:    "postgres",
			dialect: postgresDialect,
			want:    `CREATE TABLE "sample" ("ID" BIGINT, "Rate" DOUBLE PRECISION, "Label" TEXT, "When" DATE)`,
		},
		{
			name:    "mysql",
			dialect: mysqlDialect,
			want:    "CREATE TABLE `sample` (`ID` BIGINT, `Rate` DOUBLE, `Label` TEXT, `When` DATE)",
		},
		{
			name:    "sqlite",
			dialect: sqliteDialect,
			want:    `CREATE TABLE "sample" ("ID" INTEGER, "Rate" REAL, "Label" TEXT, "When" TEXT)`,
		},
	}

	d := ddlDataset()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createTableDDL(d, tt.dialect); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDropTableDDL(t *testing.T) {
	if got := dropTableDDL(ddlDataset(), postgresDialect); got != `DROP TABLE IF EXISTS "sample"` {
		t.Errorf("Unexpected DDL: %q", got)
	}
}

func TestRowValues(t *testing.T) {
	vals := rowValues(ddlDataset(), 0)

	if vals[0] != int64(1) {
		t.Errorf("Expected int64 1, got %#v", vals[0])
	}
	if vals[1] != 0.15 {
		t.Errorf("Expected 0.15, got %#v", vals[1])
	}
	if vals[2] != nil {
		t.Errorf("Expected nil for missing cell, got %#v", vals[2])
	}
	// Date cells go over database/sql as ISO text.
	if vals[3] != "2020-06-01" {
		t.Errorf("Expected ISO date text, got %#v", vals[3])
	}
}

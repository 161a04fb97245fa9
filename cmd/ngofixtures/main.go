package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aya-alharazin/ngofixtures"
)

var (
	outputDir    string
	datasetsFlag string
	excludeFlag  string
	seed         uint64
	largeRows    int
	dbURL        string
	mysqlURL     string
	sqlitePath   string
	listDatasets bool
)

var rootCmd = &cobra.Command{
	Use:   "ngofixtures",
	Short: "Generate the synthetic NGO training datasets",
	Long: `ngofixtures generates the 20 synthetic NGO-themed CSV datasets used by the
data-analysis training curriculum: 18 literal golden fixtures reproduced
bit-for-bit on every run, plus two 100,000-row randomly sampled datasets.
The generated datasets can optionally be loaded into PostgreSQL, MySQL,
or SQLite for the SQL variants of the exercises.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Output directory for CSV files")
	rootCmd.Flags().StringVarP(&datasetsFlag, "datasets", "t", "", "Specific datasets (comma-separated, optional)")
	rootCmd.Flags().StringVar(&excludeFlag, "exclude", "", "Datasets to skip (comma-separated, optional)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the procedural datasets (0 = fresh random data)")
	rootCmd.Flags().IntVar(&largeRows, "rows", 0, "Row count for the procedural datasets (default 100000)")
	rootCmd.Flags().StringVar(&dbURL, "db-url", "", "Also load datasets into PostgreSQL (connection string)")
	rootCmd.Flags().StringVar(&mysqlURL, "mysql-url", "", "Also load datasets into MySQL (connection string)")
	rootCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Also load datasets into SQLite (database file path)")
	rootCmd.Flags().BoolVar(&listDatasets, "list", false, "List dataset names and exit")
}

func run(cmd *cobra.Command, args []string) error {
	if listDatasets {
		for _, name := range ngofixtures.DatasetNames() {
			fmt.Println(name)
		}
		return nil
	}

	// Validate database flags
	dbCount := 0
	for _, v := range []string{dbURL, mysqlURL, sqlitePath} {
		if v != "" {
			dbCount++
		}
	}
	if dbCount > 1 {
		return fmt.Errorf("only one of --db-url, --mysql-url, or --sqlite can be specified")
	}

	opts := &ngofixtures.Options{
		Datasets:        parseList(datasetsFlag),
		ExcludeDatasets: parseList(excludeFlag),
		Seed:            seed,
		LargeRows:       largeRows,
	}

	datasets, err := ngofixtures.Generate(opts)
	if err != nil {
		return fmt.Errorf("failed to generate datasets: %w", err)
	}

	written, err := ngofixtures.WriteCSV(datasets, &ngofixtures.OutputOptions{OutputDir: outputDir})
	if err != nil {
		return fmt.Errorf("failed to write datasets: %w", err)
	}

	if dbCount > 0 {
		url := databaseURLFromFlags(dbURL, mysqlURL, sqlitePath)
		if err := ngofixtures.SeedDatabase(context.Background(), url, datasets); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	fmt.Printf("All %d synthetic NGO datasets generated successfully (%s).\n",
		len(datasets), humanize.Bytes(uint64(written)))
	return nil
}

// parseList splits a comma-separated flag value, trimming whitespace
func parseList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// databaseURLFromFlags normalizes the three database flags into one
// scheme-prefixed URL. At most one flag is non-empty by the time this
// is called.
func databaseURLFromFlags(postgres, mysql, sqlite string) string {
	switch {
	case postgres != "":
		return postgres
	case mysql != "":
		if strings.HasPrefix(mysql, "mysql://") {
			return mysql
		}
		return "mysql://" + mysql
	case sqlite != "":
		if strings.HasPrefix(sqlite, "sqlite://") {
			return sqlite
		}
		return "sqlite://" + sqlite
	}
	return ""
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

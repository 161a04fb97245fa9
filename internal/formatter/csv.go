package formatter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aya-alharazin/ngofixtures/internal/dataset"
)

// CSVFormatter writes one dataset as comma-delimited text: a header
// row of column names followed by one record per row. Missing cells
// become empty fields; no index column is emitted.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// Format writes the dataset in CSV format
func (f *CSVFormatter) Format(d *dataset.Dataset) error {
	w := csv.NewWriter(f.writer)

	if err := w.Write(d.Header()); err != nil {
		return fmt.Errorf("write header for %s: %w", d.Name, err)
	}
	for i := 0; i < d.Rows(); i++ {
		if err := w.Write(d.Record(i)); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i, d.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", d.Name, err)
	}
	return nil
}

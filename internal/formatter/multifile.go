package formatter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aya-alharazin/ngofixtures/internal/dataset"
)

// MultiFileWriter writes each dataset to <name>.csv in a directory
type MultiFileWriter struct {
	OutputDir string
}

// NewMultiFileWriter creates a new multi-file writer
func NewMultiFileWriter(outputDir string) *MultiFileWriter {
	return &MultiFileWriter{OutputDir: outputDir}
}

// Write serializes every dataset to its own file, creating the output
// directory if needed, and returns the total bytes written. Existing
// files are overwritten. The first write failure aborts the run;
// already-written files are left in place.
func (m *MultiFileWriter) Write(datasets []*dataset.Dataset) (int64, error) {
	if err := os.MkdirAll(m.OutputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	var total int64
	for _, d := range datasets {
		n, err := m.writeDataset(d)
		total += n
		if err != nil {
			return total, fmt.Errorf("failed to write dataset %s: %w", d.Name, err)
		}
	}
	return total, nil
}

// Filename returns the output path for a dataset name
func (m *MultiFileWriter) Filename(name string) string {
	return filepath.Join(m.OutputDir, name+".csv")
}

func (m *MultiFileWriter) writeDataset(d *dataset.Dataset) (int64, error) {
	file, err := os.Create(m.Filename(d.Name))
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: file}
	ferr := NewCSVFormatter(cw).Format(d)
	cerr := file.Close()
	if ferr != nil {
		return cw.n, ferr
	}
	return cw.n, cerr
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

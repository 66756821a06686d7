package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
)

// CSVWriter exports separation-energy tables as CSV files.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Kind      massgrid.Kind
	Points    []massgrid.Point
	BOMPrefix bool // add UTF-8 BOM for Excel compatibility
}

// WriteFile writes the table to filePath, creating parent directories as
// needed.
func (w *CSVWriter) WriteFile(filePath string, options WriteOptions) error {
	w.logger.Info("writing separation energy CSV",
		slog.String("file_path", filePath),
		slog.String("kind", string(options.Kind)),
		slog.Int("point_count", len(options.Points)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(columnHeaders(options.Kind)); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, p := range options.Points {
		if err := writer.Write(columnValues(options.Kind, p)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

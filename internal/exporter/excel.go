package exporter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
)

// ExcelWriter exports separation-energy tables as xlsx workbooks.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance.
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteFile writes one sheet named after the kind ("S2N" or "S2P") with a
// header row and numeric cells, so the values survive into spreadsheet
// tooling without string coercion.
func (w *ExcelWriter) WriteFile(filePath string, kind massgrid.Kind, points []massgrid.Point) error {
	w.logger.Info("writing separation energy workbook",
		slog.String("file_path", filePath),
		slog.String("kind", string(kind)),
		slog.Int("point_count", len(points)))

	f := excelize.NewFile()
	defer f.Close()

	sheet := strings.ToUpper(string(kind))
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range columnHeaders(kind) {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, p := range points {
		first, second := p.Z, p.N
		if kind == massgrid.S2p {
			first, second = p.N, p.Z
		}
		values := []interface{}{first, second, p.Energy, p.Error}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

package exporter

import (
	"fmt"
	"io"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/chart"
	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// Chart canvas size in SVG user units, sized for N up to 177 and Z up to
// 119 on the 32-unit grid.
const (
	chartWidth  = 6200
	chartHeight = 4000
)

// WriteChart renders the chart of nuclides as an SVG document: one square
// per ground-state record plus one or two text labels. Half-life values
// were already markup-escaped by the parser.
func WriteChart(w io.Writer, records []domain.NuclideRecord) error {
	if _, err := fmt.Fprintln(w, `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`); err != nil {
		return fmt.Errorf("failed to write preamble: %w", err)
	}
	if _, err := fmt.Fprintf(w, "<svg width=\"%d\" height=\"%d\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n", chartWidth, chartHeight); err != nil {
		return fmt.Errorf("failed to write svg element: %w", err)
	}

	for _, rec := range records {
		cell := chart.Describe(rec)
		if err := writeCell(w, rec, cell); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "</svg>"); err != nil {
		return fmt.Errorf("failed to close svg element: %w", err)
	}
	return nil
}

func writeCell(w io.Writer, rec domain.NuclideRecord, cell domain.ChartCell) error {
	if _, err := fmt.Fprintf(w,
		"<rect style=\"stroke:#000000;stroke-width:0.5;%s\" x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n",
		cell.RectStyle, cell.X, cell.Y, domain.CellSize, domain.CellSize); err != nil {
		return fmt.Errorf("failed to write rect: %w", err)
	}

	// Synthesized "(Z)" names are wider, so they draw smaller and with a
	// tighter horizontal correction.
	labelX := cell.X + 12 - len(rec.ElementName)*4
	fontSize := 7
	if cell.Synthesized {
		labelX = cell.X + 12 - len(rec.ElementName)*2
		fontSize = 6
	}
	if _, err := fmt.Fprintf(w, "<text style=\"font-size:%dpx%s\" x=\"%d\" y=\"%d\">%s</text>\n",
		fontSize, cell.LabelColor, labelX, cell.Y+10, cell.Label); err != nil {
		return fmt.Errorf("failed to write label: %w", err)
	}

	if cell.HalfLife != "" {
		if _, err := fmt.Fprintf(w, "<text style=\"font-size:5px\" x=\"%d\" y=\"%d\">%s</text>\n",
			cell.X+12-len(cell.HalfLife), cell.Y+25, cell.HalfLife); err != nil {
			return fmt.Errorf("failed to write half-life label: %w", err)
		}
	}
	return nil
}

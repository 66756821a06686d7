package exporter

import (
	"fmt"
	"io"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
)

// WriteTable emits the plain-text separation-energy table: a comment
// header, four space-separated columns per point, and a blank separator
// line after each completed Z block so gnuplot treats the rows of one
// element as one dataset.
func WriteTable(w io.Writer, kind massgrid.Kind, points []massgrid.Point) error {
	header := "# Z  N  S2n"
	if kind == massgrid.S2p {
		header = "# N  Z  S2p"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	lastZ := -1
	for _, p := range points {
		if lastZ >= 0 && p.Z != lastZ {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("failed to write block separator: %w", err)
			}
		}
		lastZ = p.Z

		cols := columnValues(kind, p)
		if _, err := fmt.Fprintf(w, "%s %s %s %s\n", cols[0], cols[1], cols[2], cols[3]); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if len(points) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("failed to write trailing separator: %w", err)
		}
	}
	return nil
}

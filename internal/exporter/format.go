package exporter

import (
	"strconv"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
)

// formatEnergy renders an energy value with six significant digits,
// matching the historical table output.
func formatEnergy(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatInt renders a Z or N index.
func formatInt(i int) string {
	return strconv.Itoa(i)
}

// columnHeaders returns the table headers in emission order. The S2p
// variant historically prints N before Z.
func columnHeaders(kind massgrid.Kind) []string {
	if kind == massgrid.S2p {
		return []string{"N", "Z", "S2p (MeV)", "Error (MeV)"}
	}
	return []string{"Z", "N", "S2n (MeV)", "Error (MeV)"}
}

// columnValues returns one row in emission order for the given kind.
func columnValues(kind massgrid.Kind, p massgrid.Point) []string {
	energy := formatEnergy(p.Energy)
	errStr := formatEnergy(p.Error)
	if kind == massgrid.S2p {
		return []string{formatInt(p.N), formatInt(p.Z), energy, errStr}
	}
	return []string{formatInt(p.Z), formatInt(p.N), energy, errStr}
}

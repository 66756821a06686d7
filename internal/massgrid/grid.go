// Package massgrid folds parsed nuclide records into a sparse mass/error
// grid keyed by (Z, N) and derives two-nucleon separation energies.
package massgrid

import (
	"sort"

	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// Epsilon is the reserved sentinel stored for a record whose mass defect
// is tabulated as exactly zero. The historical format uses a literal zero
// for "missing", so an on-record zero needs a distinguishable stand-in to
// survive the "populated means nonzero" test downstream.
const Epsilon = 1e-12

// Key addresses one grid cell.
type Key struct {
	Z int
	N int
}

// cell holds mass and uncertainty in MeV.
type cell struct {
	Mass  float64
	Error float64
}

// Grid is the shared mutable state of the accumulation pass. It is owned
// by a single goroutine; concurrent fills use one Grid per worker and
// Merge afterwards.
type Grid struct {
	cells map[Key]cell
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{cells: make(map[Key]cell)}
}

// Accumulate folds one record into the grid, converting keV to MeV.
// Duplicate (Z, N) lines overwrite, matching the expected single-entry
// format. A zero mass defect stores the Epsilon sentinel; the error value
// is stored either way.
func (g *Grid) Accumulate(rec domain.NuclideRecord) {
	k := Key{Z: rec.AtomicNumber, N: rec.NeutronNumber}
	c := cell{
		Mass:  rec.MassDefectKeV / 1000,
		Error: rec.MassErrorKeV / 1000,
	}
	if rec.MassDefectKeV == 0 {
		c.Mass = Epsilon
	}
	g.cells[k] = c
}

// Mass returns the stored mass in MeV and whether the cell was visited.
func (g *Grid) Mass(z, n int) (float64, bool) {
	c, ok := g.cells[Key{Z: z, N: n}]
	return c.Mass, ok
}

// Error returns the stored uncertainty in MeV.
func (g *Grid) Error(z, n int) float64 {
	return g.cells[Key{Z: z, N: n}].Error
}

// Populated reports whether a cell holds a usable mass value: visited and
// nonzero (the sentinel counts, a raw zero would not).
func (g *Grid) Populated(z, n int) bool {
	c, ok := g.cells[Key{Z: z, N: n}]
	return ok && c.Mass != 0
}

// Len returns the number of visited cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Merge copies other's cells into g. When both grids visited a cell, the
// more specific value wins: a measured mass beats the zero-mass sentinel.
func (g *Grid) Merge(other *Grid) {
	for k, c := range other.cells {
		if existing, ok := g.cells[k]; ok && c.Mass == Epsilon && existing.Mass != Epsilon {
			continue
		}
		g.cells[k] = c
	}
}

// keys returns all visited cells ordered by Z then N.
func (g *Grid) keys() []Key {
	ks := make([]Key, 0, len(g.cells))
	for k := range g.cells {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool {
		if ks[i].Z != ks[j].Z {
			return ks[i].Z < ks[j].Z
		}
		return ks[i].N < ks[j].N
	})
	return ks
}

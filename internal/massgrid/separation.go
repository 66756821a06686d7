package massgrid

import (
	"fmt"
	"math"
)

// Kind selects which two-nucleon separation energy a derivation pass
// produces. Only one derivation is active at a time.
type Kind string

const (
	S2n Kind = "s2n" // two-neutron separation energy
	S2p Kind = "s2p" // two-proton separation energy
)

// Binding-energy constants of the removed nucleon pair, in MeV.
const (
	twoNeutronConstant = 16.142
	twoProtonConstant  = 14.578
)

// ParseKind validates a user-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case S2n:
		return S2n, nil
	case S2p:
		return S2p, nil
	}
	return "", fmt.Errorf("unknown separation energy kind %q (want s2n or s2p)", s)
}

// Point is one derived separation energy with its propagated uncertainty,
// both in MeV.
type Point struct {
	Z      int     `json:"z"`
	N      int     `json:"n"`
	Energy float64 `json:"energy_mev"`
	Error  float64 `json:"error_mev"`
}

// Derive computes the selected separation energy for every populated cell
// whose two-nucleon-removed partner is also populated, ordered by
// increasing Z then increasing N.
//
//	S2n(Z,N) = 16.142 + m[Z][N-2] - m[Z][N]
//	S2p(Z,N) = 14.578 + m[Z-2][N] - m[Z][N]
//
// with the error combined in quadrature.
func (g *Grid) Derive(kind Kind) []Point {
	var points []Point
	for _, k := range g.keys() {
		if k.Z < 2 || k.N < 2 {
			continue
		}
		pz, pn := k.Z, k.N-2
		constant := twoNeutronConstant
		if kind == S2p {
			pz, pn = k.Z-2, k.N
			constant = twoProtonConstant
		}
		if !g.Populated(k.Z, k.N) || !g.Populated(pz, pn) {
			continue
		}

		partner := g.cells[Key{Z: pz, N: pn}]
		here := g.cells[k]
		points = append(points, Point{
			Z:      k.Z,
			N:      k.N,
			Energy: constant + partner.Mass - here.Mass,
			Error:  math.Sqrt(partner.Error*partner.Error + here.Error*here.Error),
		})
	}
	return points
}

// Package chart maps parsed nuclide records onto chart-of-nuclides render
// descriptors: grid position, per-decay-mode style, labels.
package chart

import (
	"strings"

	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// TopZ is the highest proton number row on the chart canvas; Z grows
// upward, so row 0 of the drawing holds Z = TopZ.
const TopZ = 119

// style is the SVG fill selected by decay mode, plus the label color
// override used on dark cells.
type style struct {
	rect  string
	label string
}

// modeStyles is the fixed color-per-mode table of the chart renderer.
var modeStyles = map[domain.DecayMode]style{
	domain.DecayStable:    {rect: "fill:#000000;", label: ";fill:#ffffff"},
	domain.DecayBetaMinus: {rect: "fill:#758fff"},
	domain.DecayBetaPlus:  {rect: "fill:#ff7e75"},
	domain.DecayAlpha:     {rect: "fill:#fffe49"},
	domain.DecayFission:   {rect: "fill:#5cbc57"},
	domain.DecayProton:    {rect: "fill:#ffa425"},
	domain.DecayTwoProton: {rect: "fill:#ffa425"},
	domain.DecayNeutron:   {rect: "fill:none;stroke-dasharray:2,2"},
	domain.DecayUnbound:   {rect: "fill:none;stroke-dasharray:2,2"},
	domain.DecayUnknown:   {rect: "fill:none;stroke-dasharray:2,2"},
}

// Describe produces the render descriptor for one ground-state record.
// Pure mapping: no shared state, input order preserved by the caller.
func Describe(rec domain.NuclideRecord) domain.ChartCell {
	st, ok := modeStyles[rec.PrimaryDecayMode]
	if !ok {
		st = style{rect: "fill:none"}
	}

	cell := domain.ChartCell{
		X:           rec.NeutronNumber * domain.CellUnit,
		Y:           (TopZ - rec.AtomicNumber) * domain.CellUnit,
		RectStyle:   st.rect,
		LabelColor:  st.label,
		Label:       rec.String(),
		Synthesized: strings.HasPrefix(rec.ElementName, "("),
	}
	if rec.PrimaryDecayMode.Decaying() {
		cell.HalfLife = rec.HalfLifeDisplay
	}
	return cell
}

package domain

// CellUnit is the chart grid pitch in SVG user units: 30 drawn pixels per
// nuclide square plus a 2 pixel gap.
const CellUnit = 30 + 2

// CellSize is the drawn edge length of one nuclide square.
const CellSize = 30

// ChartCell describes one nuclide square on the chart of nuclides. It is a
// pure render descriptor: position, style and labels, no table data.
type ChartCell struct {
	X int `json:"x"`
	Y int `json:"y"`

	// RectStyle is the SVG fill/stroke fragment selected by decay mode.
	RectStyle string `json:"rect_style"`
	// LabelColor is an extra style fragment for the label text; only
	// stable (black) cells carry one to keep the label readable.
	LabelColor string `json:"label_color,omitempty"`

	// Label is the element name followed by the mass number, e.g. "Sn132".
	Label string `json:"label"`
	// Synthesized marks labels built from a numeric placeholder name such
	// as "(119)292"; the renderer uses a smaller font for them.
	Synthesized bool `json:"synthesized,omitempty"`

	// HalfLife is the secondary label, empty for non-decaying species.
	HalfLife string `json:"half_life,omitempty"`
}

package nubase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// stubLookup resolves a fixed ordered name list, index = Z.
type stubLookup []string

func (s stubLookup) ElementName(z int) (string, bool) {
	if z < 0 || z >= len(s) {
		return "", false
	}
	return s[z], true
}

var testElements = stubLookup{"n", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne"}

// tableLine lays the given fields out at their punch-card offsets. The
// state byte at offset 7 is '0' (ground state) unless overridden.
type tableLine struct {
	a, z     string
	state    byte
	mass     string
	massErr  string
	halfLife string
	unit     string
	spin     string
	decay    string
}

func (l tableLine) render() string {
	buf := []byte(strings.Repeat(" ", 106))
	put := func(off int, s string) { copy(buf[off:], s) }
	put(0, l.a)
	put(4, l.z)
	if l.state == 0 {
		l.state = '0'
	}
	buf[7] = l.state
	put(18, l.mass)
	put(29, l.massErr)
	put(60, l.halfLife)
	put(69, l.unit)
	put(79, l.spin)
	return string(buf) + l.decay
}

func TestParserParse(t *testing.T) {
	p := NewParser(testElements, nil)

	tests := []struct {
		name string
		line tableLine
		want domain.NuclideRecord
	}{
		{
			name: "stable nuclide",
			line: tableLine{
				a: "  4", z: "  2", mass: "   2424.9", massErr: "      0.0",
				halfLife: "stbl", spin: "0+", decay: "IS=99.999866 3",
			},
			want: domain.NuclideRecord{
				MassNumber: 4, AtomicNumber: 2, NeutronNumber: 2,
				ElementName: "He", MassDefectKeV: 2424.9,
				HalfLifeDisplay: "stbl", Spin: "0+",
				PrimaryDecayMode: domain.DecayStable,
			},
		},
		{
			name: "beta minus emitter with unit",
			line: tableLine{
				a: "  6", z: "  2", mass: "  17592.1", massErr: "      1.0",
				halfLife: "806.7", unit: "ms", spin: "0+", decay: "B-=100",
			},
			want: domain.NuclideRecord{
				MassNumber: 6, AtomicNumber: 2, NeutronNumber: 4,
				ElementName: "He", MassDefectKeV: 17592.1, MassErrorKeV: 1,
				HalfLifeDisplay: "806.7 ms", Spin: "0+",
				PrimaryDecayMode: domain.DecayBetaMinus,
			},
		},
		{
			name: "extrapolated mass keeps numeric prefix",
			line: tableLine{
				a: " 10", z: "  3", mass: " 33051#  ", massErr: "   15#   ",
				halfLife: "2.0", unit: "zs", spin: "1-#", decay: "n ?",
			},
			want: domain.NuclideRecord{
				MassNumber: 10, AtomicNumber: 3, NeutronNumber: 7,
				ElementName: "Li", MassDefectKeV: 33051, MassErrorKeV: 15,
				Extrapolated:    true,
				HalfLifeDisplay: "2.0 zs", Spin: "1-",
				PrimaryDecayMode: domain.DecayNeutron,
			},
		},
		{
			name: "particle unstable",
			line: tableLine{
				a: "  5", z: "  2", mass: "  11386.2", massErr: "     0.54",
				halfLife: "p-unst", spin: "3/2-", decay: "n=?",
			},
			want: domain.NuclideRecord{
				MassNumber: 5, AtomicNumber: 2, NeutronNumber: 3,
				ElementName: "He", MassDefectKeV: 11386.2, MassErrorKeV: 0.54,
				HalfLifeDisplay: "p-unst", Spin: "3/2-",
				PrimaryDecayMode: domain.DecayUnbound,
			},
		},
		{
			name: "half-life upper limit escaped for markup",
			line: tableLine{
				a: "  7", z: "  5", mass: "  27870.0", massErr: "     70.0",
				halfLife: " <1", unit: "s ", spin: "(3/2-)", decay: "p ?",
			},
			want: domain.NuclideRecord{
				MassNumber: 7, AtomicNumber: 5, NeutronNumber: 2,
				ElementName: "B", MassDefectKeV: 27870, MassErrorKeV: 70,
				HalfLifeDisplay: "&lt; 1 s", Spin: "(3/2-)",
				PrimaryDecayMode: domain.DecayProton,
			},
		},
		{
			name: "element table overflow synthesizes placeholder",
			line: tableLine{
				a: "300", z: "150", mass: "    100#  ", massErr: "    50#  ",
				halfLife: "1", unit: "ns", spin: "", decay: "SF=100",
			},
			want: domain.NuclideRecord{
				MassNumber: 300, AtomicNumber: 150, NeutronNumber: 150,
				ElementName: "(150)", MassDefectKeV: 100, MassErrorKeV: 50,
				Extrapolated:    true,
				HalfLifeDisplay: "1 ns",
				PrimaryDecayMode: domain.DecayFission,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.line.render())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParserNeutronNumberInvariant(t *testing.T) {
	p := NewParser(testElements, nil)

	lines := []tableLine{
		{a: "  1", z: "  0", halfLife: "613.9", unit: "s ", decay: "B-=100"},
		{a: " 16", z: "  8", halfLife: "stbl", decay: "IS=99.757 16"},
		{a: "238", z: " 92", halfLife: "4.468", unit: "Gy", decay: "A=100"},
	}
	for _, l := range lines {
		rec := p.Parse(l.render())
		assert.Equal(t, rec.MassNumber-rec.AtomicNumber, rec.NeutronNumber)
	}
}

func TestParserIdempotent(t *testing.T) {
	p := NewParser(testElements, nil)
	line := tableLine{
		a: "  6", z: "  2", mass: "  17592.1", massErr: "      1.0",
		halfLife: "806.7", unit: "ms", spin: "0+", decay: "B-=100",
	}.render()

	first := p.Parse(line)
	second := p.Parse(line)
	assert.Equal(t, first, second)
}

func TestParserShortAndMalformedLines(t *testing.T) {
	p := NewParser(testElements, nil)

	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"only mass number", "  7"},
		{"cut before half-life", tableLine{a: " 12", z: "  6", mass: "      0.0"}.render()[:40]},
		{"garbage everywhere", strings.Repeat("x", 120)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Parse(tt.line)
			// Tolerant parsing substitutes zeros, never panics or fails.
			assert.GreaterOrEqual(t, rec.MassNumber, 0)
			assert.Zero(t, rec.MassDefectKeV)
			assert.Zero(t, rec.MassErrorKeV)
		})
	}
}

func TestParserNonNumericFieldsYieldZero(t *testing.T) {
	p := NewParser(testElements, nil)
	line := tableLine{
		a: "abc", z: "xyz", mass: "not-a-num", massErr: "???",
		halfLife: "1.2", unit: "s ", decay: "B-=100",
	}.render()

	rec := p.Parse(line)
	require.Equal(t, 0, rec.MassNumber)
	require.Equal(t, 0, rec.AtomicNumber)
	assert.Equal(t, "n", rec.ElementName) // Z=0 resolves to the neutron row
	assert.Zero(t, rec.MassDefectKeV)
	assert.Zero(t, rec.MassErrorKeV)
}

// Values wider than their column window end at the field boundary; the
// digits past byte 27 belong to the spacer column, not the mass defect.
func TestParserMassFieldEndsAtColumnBoundary(t *testing.T) {
	p := NewParser(testElements, nil)
	line := tableLine{
		a: "  4", z: "  2", mass: "2424.91565", massErr: "  0.00006",
		halfLife: "stbl", decay: "IS=100",
	}.render()

	rec := p.Parse(line)
	assert.Equal(t, 2424.9156, rec.MassDefectKeV)
	assert.Equal(t, 0.00006, rec.MassErrorKeV)
}

func TestCleanHalfLife(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"stbl   ", "stbl"},
		{" 613.9 ", "613.9"},
		{" <1    ", "&lt; 1"},
		{" >300  ", "&gt; 300"},
		{"2.0#   ", "2.0"},
		{"p-unst ", "p-unst"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanHalfLife(tt.raw), "raw %q", tt.raw)
	}
}

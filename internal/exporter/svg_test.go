package exporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

func TestWriteChart(t *testing.T) {
	records := []domain.NuclideRecord{
		{
			MassNumber: 4, AtomicNumber: 2, NeutronNumber: 2,
			ElementName: "He", HalfLifeDisplay: "stbl",
			PrimaryDecayMode: domain.DecayStable,
		},
		{
			MassNumber: 6, AtomicNumber: 2, NeutronNumber: 4,
			ElementName: "He", HalfLifeDisplay: "806.7 ms",
			PrimaryDecayMode: domain.DecayBetaMinus,
		},
		{
			MassNumber: 295, AtomicNumber: 119, NeutronNumber: 176,
			ElementName: "(119)", HalfLifeDisplay: "&lt; 1 s",
			PrimaryDecayMode: domain.DecayUnknown,
		},
	}

	var buf strings.Builder
	require.NoError(t, WriteChart(&buf, records))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, len(records), strings.Count(out, "<rect "))

	// Stable cells draw black with a white label.
	assert.Contains(t, out, "fill:#000000;")
	assert.Contains(t, out, ";fill:#ffffff")

	// One secondary half-life label, for the beta emitter only.
	assert.Equal(t, 1, strings.Count(out, "font-size:5px"))
	assert.Contains(t, out, ">806.7 ms</text>")
	assert.NotContains(t, out, ">stbl</text>")
	assert.NotContains(t, out, ">&lt; 1 s</text>")

	// Synthesized names draw with the smaller font.
	assert.Contains(t, out, "font-size:6px")
	assert.Contains(t, out, ">(119)295</text>")
}

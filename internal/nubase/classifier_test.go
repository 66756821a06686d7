package nubase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		decay    string
		halfLife string
		want     domain.DecayMode
	}{
		{"beta minus", "B-=100", "12.3 s", domain.DecayBetaMinus},
		{"beta minus with secondary branch", "B-=100;B-n=2.8", "100 ms", domain.DecayBetaMinus},
		{"beta plus", "B+=100", "1.2 m", domain.DecayBetaPlus},
		{"electron capture", "EC=100", "3 d", domain.DecayBetaPlus},
		{"alpha", "A=100", "4.468 Gy", domain.DecayAlpha},
		{"spontaneous fission", "SF=100", "1 ns", domain.DecayFission},
		{"proton", "p=100", "10 us", domain.DecayProton},
		{"two proton", "2p=100", "1 ms", domain.DecayTwoProton},
		{"neutron", "n=100", "1 zs", domain.DecayNeutron},
		{"two neutron", "2n=100", "1 zs", domain.DecayNeutron},
		{"isotopic abundance means stable", "IS=99.757 16", "4 Gy", domain.DecayStable},
		{"empty token", "", "1 s", domain.DecayUnknown},
		{"unrecognized code", "B-n=55", "1 s", domain.DecayUnknown},

		// Half-life sentinels override the code field.
		{"stbl overrides beta", "B-=100", "stbl", domain.DecayStable},
		{"stbl with empty code", "", "stbl", domain.DecayStable},
		{"particle unstable overrides neutron", "n=?", "p-unst", domain.DecayUnbound},

		// Ambiguity markers normalize to '=' and truncate the code.
		{"approximate branching", "B-~100", "5 s", domain.DecayBetaMinus},
		{"marker directly after code", "B-~", "5 s", domain.DecayBetaMinus},
		{"lower limit marker", "A>99", "1 s", domain.DecayAlpha},
		{"upper limit marker", "SF<1", "1 s", domain.DecayFission},
		{"trailing question mark branch", "p ?", "1 s", domain.DecayProton},
		{"question marks stripped without marker", "2p?", "1 ms", domain.DecayTwoProton},
		{"branch list without ratios", "B-;A", "1 s", domain.DecayBetaMinus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.decay, tt.halfLife))
		})
	}
}

func TestDominantCode(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"B-=100", "B-"},
		{"B-=100;B-n=2.8 ?", "B-"},
		{"B-~", "B-"},
		{"2p ?", "2p"},
		{"IS=100", "IS"},
		{"A;B-", "A"},
		{"n ? ", "n"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dominantCode(tt.token), "token %q", tt.token)
	}
}

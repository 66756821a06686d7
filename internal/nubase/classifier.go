package nubase

import (
	"strings"

	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// ambiguityMarkers are the NUBASE annotations expressing an uncertain
// branching ratio. Each is normalized to '=' at most once, in this order.
// For the two-byte " ?" form only the leading space becomes '=', which is
// enough for the truncation step below.
var ambiguityMarkers = []string{"~", ">", "<", " ?"}

// Classify determines the primary decay mode from the raw decay-mode
// region of the line. The half-life sentinels take priority over the
// textual code: stability is authoritative even when the code field is
// empty or stale.
func Classify(decayToken, halfLifeDisplay string) domain.DecayMode {
	code := dominantCode(decayToken)

	switch {
	case halfLifeDisplay == domain.HalfLifeStable || code == "IS":
		return domain.DecayStable
	case halfLifeDisplay == domain.HalfLifeUnbound:
		return domain.DecayUnbound
	}

	switch code {
	case "B-":
		return domain.DecayBetaMinus
	case "B+", "EC":
		return domain.DecayBetaPlus
	case "A":
		return domain.DecayAlpha
	case "SF":
		return domain.DecayFission
	case "p":
		return domain.DecayProton
	case "2p":
		return domain.DecayTwoProton
	case "n", "2n":
		return domain.DecayNeutron
	}
	return domain.DecayUnknown
}

// dominantCode reduces the decay-mode region to the short code of the
// largest branching. The field lists branches like "B-=100;B-n=2.8 ?" with
// '~', '<', '>' or a trailing " ?" marking uncertain values.
func dominantCode(token string) string {
	for _, marker := range ambiguityMarkers {
		if i := strings.Index(token, marker); i >= 0 {
			token = token[:i] + "=" + token[i+1:]
		}
	}

	// The first branch listed is the dominant one. An '=' (present in the
	// data or produced above) ends the code; otherwise the code runs to
	// the first ';' with stray spaces and question marks dropped.
	if i := strings.IndexByte(token, '='); i >= 0 {
		return token[:i]
	}
	if i := strings.IndexByte(token, ';'); i >= 0 {
		token = token[:i]
	}
	token = strings.ReplaceAll(token, " ", "")
	return strings.ReplaceAll(token, "?", "")
}

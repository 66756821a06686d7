package domain

import "fmt"

// DecayMode represents the primary (highest branching ratio) decay channel
// of a nuclide as classified from the NUBASE decay-mode field.
type DecayMode string

const (
	DecayStable    DecayMode = "stable"
	DecayUnbound   DecayMode = "unbound"
	DecayBetaMinus DecayMode = "beta-minus"
	DecayBetaPlus  DecayMode = "beta-plus"
	DecayAlpha     DecayMode = "alpha"
	DecayFission   DecayMode = "fission"
	DecayProton    DecayMode = "proton"
	DecayTwoProton DecayMode = "two-proton"
	DecayNeutron   DecayMode = "neutron"
	DecayUnknown   DecayMode = "unknown"
)

// Decaying reports whether the mode describes a species with a measured
// radioactive decay. Stable, unbound and unknown nuclides carry no
// half-life worth displaying.
func (m DecayMode) Decaying() bool {
	switch m {
	case DecayStable, DecayUnbound, DecayUnknown:
		return false
	}
	return true
}

// Half-life sentinels used by the NUBASE table instead of a numeric value.
const (
	HalfLifeStable  = "stbl"   // stable nuclide, no decay
	HalfLifeUnbound = "p-unst" // particle-unstable (unbound) nuclide
)

// NuclideRecord is one parsed ground-state entry of the nuclide table.
// Records are fully populated by a single parse+classify pass and are not
// mutated afterwards.
type NuclideRecord struct {
	MassNumber    int    `json:"mass_number"`    // A
	AtomicNumber  int    `json:"atomic_number"`  // Z
	NeutronNumber int    `json:"neutron_number"` // N = A - Z
	ElementName   string `json:"element_name"`

	MassDefectKeV float64 `json:"mass_defect_kev"`
	MassErrorKeV  float64 `json:"mass_error_kev"`
	Extrapolated  bool    `json:"extrapolated"`

	HalfLifeDisplay  string    `json:"half_life_display"`
	Spin             string    `json:"spin,omitempty"`
	PrimaryDecayMode DecayMode `json:"primary_decay_mode"`
}

// Stable reports whether the record's half-life field carries the stable
// sentinel.
func (r *NuclideRecord) Stable() bool {
	return r.HalfLifeDisplay == HalfLifeStable
}

// String returns the conventional isotope notation, e.g. "Fe56".
func (r *NuclideRecord) String() string {
	return fmt.Sprintf("%s%d", r.ElementName, r.MassNumber)
}

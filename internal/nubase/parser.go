package nubase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// ElementLookup resolves an atomic number to an element name. The second
// return value is false when the table has no entry for that Z.
type ElementLookup interface {
	ElementName(z int) (string, bool)
}

// Parser turns one fixed-column NUBASE line into a NuclideRecord. Parsing
// is deliberately tolerant: malformed or missing fields fall back to zero
// values and never fail the record, matching the legacy table tooling.
type Parser struct {
	elements ElementLookup
	logger   *slog.Logger
}

// NewParser creates a parser resolving element names through lookup.
func NewParser(lookup ElementLookup, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		elements: lookup,
		logger:   logger.With(slog.String("component", "nubase_parser")),
	}
}

// Parse extracts, cleans and classifies one record. It is a pure function
// of the line and the element table; the same line always yields an
// identical record.
func (p *Parser) Parse(line string) domain.NuclideRecord {
	rec := domain.NuclideRecord{}

	rec.MassNumber = atoi(fieldMassNumber.cut(line))
	rec.AtomicNumber = atoi(fieldAtomicNumber.cut(line))
	rec.NeutronNumber = rec.MassNumber - rec.AtomicNumber
	rec.ElementName = p.elementName(rec.AtomicNumber)

	massField := fieldMassDefect.cut(line)
	if i := strings.IndexByte(massField, '#'); i >= 0 {
		massField = massField[:i]
		rec.Extrapolated = true
	}
	rec.MassDefectKeV = atof(massField)

	errField := fieldMassError.cut(line)
	if i := strings.IndexByte(errField, '#'); i >= 0 {
		errField = errField[:i]
	}
	rec.MassErrorKeV = atof(errField)

	rec.HalfLifeDisplay = cleanHalfLife(fieldHalfLife.cut(line))
	if rec.HalfLifeDisplay != domain.HalfLifeStable && rec.HalfLifeDisplay != domain.HalfLifeUnbound {
		unit := strings.ReplaceAll(fieldHalfLifeUnit.cut(line), " ", "")
		rec.HalfLifeDisplay += " " + unit
	}

	spin := strings.ReplaceAll(fieldSpin.cut(line), " ", "")
	if i := strings.IndexByte(spin, '#'); i >= 0 {
		spin = spin[:i]
	}
	rec.Spin = spin

	rec.PrimaryDecayMode = Classify(fieldDecayModes.cut(line), rec.HalfLifeDisplay)
	return rec
}

// elementName resolves Z, synthesizing a parenthesized numeric placeholder
// when the element table ends before Z.
func (p *Parser) elementName(z int) string {
	if name, ok := p.elements.ElementName(z); ok {
		return name
	}
	return fmt.Sprintf("(%d)", z)
}

// cleanHalfLife normalizes the raw half-life field for display: spaces
// removed, the comparison characters escaped for markup output, the
// extrapolation marker dropped.
func cleanHalfLife(raw string) string {
	s := strings.ReplaceAll(raw, " ", "")
	s = strings.Replace(s, "<", "&lt; ", 1)
	s = strings.Replace(s, ">", "&gt; ", 1)
	s = strings.ReplaceAll(s, "#", "")
	return s
}

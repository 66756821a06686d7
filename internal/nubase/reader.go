package nubase

import (
	"bufio"
	"io"

	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// GroundState reports whether a table line is a parseable ground-state
// record: not a comment and flagged '0' at byte 7 (any other digit there
// marks an isomeric state, which the core does not parse).
func GroundState(line string) bool {
	if len(line) < 8 || line[0] == '#' {
		return false
	}
	return line[7] == '0'
}

// ReadLines returns the ground-state lines of r in input order, plus the
// count of comment and isomer lines skipped on the way.
func ReadLines(r io.Reader) (lines []string, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !GroundState(line) {
			skipped++
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return lines, skipped, err
	}
	return lines, skipped, nil
}

// ReadTable parses every ground-state record from r, in input order.
// Comment lines and isomers are skipped; per-record problems never abort
// the stream.
func ReadTable(r io.Reader, p *Parser) ([]domain.NuclideRecord, error) {
	lines, _, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	records := make([]domain.NuclideRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, p.Parse(line))
	}
	return records, nil
}

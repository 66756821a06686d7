package nubase

import (
	"strconv"
	"strings"
)

// The NUBASE table is a punch-card style format: every value lives at a
// fixed byte offset of the line. Each field is declared once here and cut
// out by a single generic routine, so the tolerant-parsing fallback lives
// in one place instead of being repeated per slice.
type fieldSpec struct {
	name   string
	offset int
	length int // -1 reads to the end of the line
}

var (
	fieldMassNumber   = fieldSpec{"mass_number", 0, 3}
	fieldAtomicNumber = fieldSpec{"atomic_number", 4, 3}
	fieldMassDefect   = fieldSpec{"mass_defect", 18, 9}
	fieldMassError    = fieldSpec{"mass_error", 29, 9}
	fieldHalfLife     = fieldSpec{"half_life", 60, 7}
	fieldHalfLifeUnit = fieldSpec{"half_life_unit", 69, 2}
	fieldSpin         = fieldSpec{"spin", 79, 13}
	fieldDecayModes   = fieldSpec{"decay_modes", 106, -1}
)

// cut extracts the field's bytes from line. Lines shorter than the field
// window yield whatever bytes exist, down to the empty string; a short
// line never fails the record.
func (f fieldSpec) cut(line string) string {
	if f.offset >= len(line) {
		return ""
	}
	if f.length < 0 {
		return line[f.offset:]
	}
	end := f.offset + f.length
	if end > len(line) {
		end = len(line)
	}
	return line[f.offset:end]
}

// atoi parses the leading integer of a (space-padded) field, returning 0
// for anything non-numeric, mirroring the permissive C atoi the historical
// table tooling relied on.
func atoi(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// atof parses the leading floating-point number of a field, returning 0.0
// for anything non-numeric.
func atof(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit := false
	seenDot := false
	seenExp := false
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '+' || c == '-':
			if end != 0 && !(seenExp && (s[end-1] == 'e' || s[end-1] == 'E')) {
				goto done
			}
		case c == '.':
			if seenDot || seenExp {
				goto done
			}
			seenDot = true
		case c == 'e' || c == 'E':
			if seenExp || !seenDigit {
				goto done
			}
			seenExp = true
		default:
			goto done
		}
		end++
	}
done:
	// A trailing exponent marker or sign is not part of a valid number.
	for end > 0 {
		c := s[end-1]
		if c == 'e' || c == 'E' || c == '+' || c == '-' {
			end--
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

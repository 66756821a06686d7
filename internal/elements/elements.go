// Package elements resolves atomic numbers to element names through the
// ordered periodic.dat lookup file: one name per line, line index = Z,
// with line zero holding the bare neutron row.
package elements

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
)

// Table is an ordered element-name lookup.
type Table struct {
	names []string
}

// New builds a table from an already-ordered name list.
func New(names []string) *Table {
	return &Table{names: names}
}

// ElementName returns the name for atomic number z, or false when the
// table ends before z. Callers synthesize a placeholder in that case.
func (t *Table) ElementName(z int) (string, bool) {
	if z < 0 || z >= len(t.names) {
		return "", false
	}
	return t.names[z], true
}

// Len returns the number of known elements, the neutron row included.
func (t *Table) Len() int {
	return len(t.names)
}

// LoadFile reads the element table at path. A missing or unreadable file
// yields an empty table, so every lookup falls back to the synthesized
// numeric placeholder instead of failing the run.
func LoadFile(path string, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("element table not readable, names will be synthesized",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return &Table{}
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		names = append(names, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("element table truncated mid-read",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}
	return &Table{names: names}
}

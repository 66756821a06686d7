package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
)

func TestCSVWriterWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "s2n.csv")
	w := NewCSVWriter(nil)

	err := w.WriteFile(path, WriteOptions{
		Kind:      massgrid.S2n,
		Points:    testPoints,
		BOMPrefix: true,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Z", "N", "S2n (MeV)", "Error (MeV)"}, rows[0])
	assert.Equal(t, []string{"8", "10", "16.142", "0.1"}, rows[1])
	assert.Equal(t, []string{"20", "22", "18.142", "0.2236"}, rows[3])
}

func TestCSVWriterS2pHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s2p.csv")
	w := NewCSVWriter(nil)

	require.NoError(t, w.WriteFile(path, WriteOptions{Kind: massgrid.S2p, Points: testPoints[:1]}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"N", "Z", "S2p (MeV)", "Error (MeV)"}, rows[0])
	assert.Equal(t, []string{"10", "8", "16.142", "0.1"}, rows[1])
}

package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
)

func TestExcelWriterWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s2n.xlsx")
	w := NewExcelWriter(nil)

	require.NoError(t, w.WriteFile(path, massgrid.S2n, testPoints))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("S2N")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Z", "N", "S2n (MeV)", "Error (MeV)"}, rows[0])
	assert.Equal(t, "8", rows[1][0])
	assert.Equal(t, "10", rows[1][1])
	assert.Equal(t, "16.142", rows[1][2])
}

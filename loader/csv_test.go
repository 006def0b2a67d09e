package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inflammation/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	name := filepath.Join(t.TempDir(), "inflammation-01.csv")
	require.NoError(t, os.WriteFile(name, []byte("0,1,2.5\n3,4,5\n"), 0666))

	table, err := LoadCSV(name)
	require.NoError(t, err)
	assert.Equal(t, defs.Table{{0, 1, 2.5}, {3, 4, 5}}, table)
}

func TestLoadCSVNonNumeric(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("1,2\n3,oops\n"))
	assert.ErrorIs(t, err, defs.ErrFormat)
}

func TestLoadCSVRaggedRows(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("1,2,3\n4,5\n"))
	assert.ErrorIs(t, err, defs.ErrFormat)
}

func TestCSVRoundTrip(t *testing.T) {
	table := defs.Table{
		{0, 1.25, 3},
		{2, 0.5, 7},
	}
	name := filepath.Join(t.TempDir(), "inflammation-rt.csv")

	require.NoError(t, WriteCSV(name, table))
	loaded, err := LoadCSV(name)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

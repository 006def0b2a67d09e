package loader

import (
	"path/filepath"
	"strings"
	"testing"

	"inflammation/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	in := `[{"observations": [1, 2, 3]}, {"observations": [4, 5]}]`

	table, err := LoadJSONFromReader(strings.NewReader(in))
	require.NoError(t, err)
	// JSON rows are independent series and may differ in length.
	assert.Equal(t, defs.Table{{1, 2, 3}, {4, 5}}, table)
}

func TestLoadJSONMissingObservations(t *testing.T) {
	in := `[{"observations": [1, 2]}, {"subject": "p2"}]`

	_, err := LoadJSONFromReader(strings.NewReader(in))
	assert.ErrorIs(t, err, defs.ErrFormat)
}

func TestLoadJSONMalformed(t *testing.T) {
	_, err := LoadJSONFromReader(strings.NewReader(`[{"observations": ["a"]}]`))
	assert.ErrorIs(t, err, defs.ErrFormat)
}

func TestJSONRoundTrip(t *testing.T) {
	table := defs.Table{
		{1, 2, 3},
		{0.5, 0.25, 9},
	}
	name := filepath.Join(t.TempDir(), "inflammation-rt.json")

	require.NoError(t, WriteJSON(name, table))
	loaded, err := LoadJSON(name)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)
}

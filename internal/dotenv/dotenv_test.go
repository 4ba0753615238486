package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/hello-formula/internal/util"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead(t *testing.T) {
	path := writeEnvFile(t, "RIT_INPUT_TEXT=Dennis\n# comment\nRIT_INPUT_LIST=\"everything\"\n")

	lookup, err := Read(path)
	require.NoError(t, err)

	v, ok := lookup("RIT_INPUT_TEXT")
	assert.True(t, ok)
	assert.Equal(t, "Dennis", v)

	v, ok = lookup("RIT_INPUT_LIST")
	assert.True(t, ok)
	assert.Equal(t, "everything", v)

	_, ok = lookup("RIT_INPUT_BOOLEAN")
	assert.False(t, ok)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLayer(t *testing.T) {
	path := writeEnvFile(t, "A=file\nB=file\n")
	base := util.MapLookup(map[string]string{"A": "process"})

	lookup, err := Layer(base, path)
	require.NoError(t, err)

	a, _ := lookup("A")
	b, _ := lookup("B")
	assert.Equal(t, "process", a)
	assert.Equal(t, "file", b)
}

func TestLayerNoPath(t *testing.T) {
	base := util.MapLookup(map[string]string{"A": "process"})

	lookup, err := Layer(base, "")
	require.NoError(t, err)
	a, ok := lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "process", a)
}

func TestLayerMissingFileKeepsBase(t *testing.T) {
	base := util.MapLookup(map[string]string{"A": "process"})

	lookup, err := Layer(base, filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	a, _ := lookup("A")
	assert.Equal(t, "process", a)
}

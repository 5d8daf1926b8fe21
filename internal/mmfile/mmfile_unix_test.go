//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapReadOnlyUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.emf")
	want := []byte{0x01, 0x00, 0x00, 0x00, 0x58, 0x00, 0x00, 0x00}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	assert.Equal(t, want, data)

	require.NoError(t, release())
	require.NoError(t, release(), "second release is a no-op")
}

func TestMapZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.emf")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	assert.Empty(t, data)
	require.NotNil(t, release)
	assert.NoError(t, release())
}

func TestMapMissing(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "absent.emf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copy.emf")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4}, 0o644))
	data, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
}

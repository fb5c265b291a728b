package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NotZero(t, c.Len())

	warmup, ok := c.Get("warmup")
	require.True(t, ok)
	assert.Equal(t, "Warm-up", warmup.Name)
	assert.Equal(t, 0.4, warmup.DistanceKm)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blocks.yaml")
	content := `blocks:
  - id: swim
    name: Swim
    distance_km: 1.5
  - id: kick
    name: Kick Set
    distance_km: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	swim, ok := c.Get("swim")
	require.True(t, ok)
	assert.Equal(t, "Swim", swim.Name)
	assert.Equal(t, 1.5, swim.DistanceKm)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocks: []\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no blocks")
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocks: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcmp/internal/adapters/config"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lockcmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
version: "1"
verbose: true
a:
  source: ./before/Cargo.lock
  root:
    name: app
  exclude:
    - winapi
    - windows-sys
b:
  source: https://example.com/after/Cargo.lock
  root:
    hash: deadbeef
`)

	cmp, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.True(t, cmp.Verbose)

	assert.Equal(t, "./before/Cargo.lock", cmp.A.Source)
	assert.Equal(t, "app", cmp.A.RootName)
	assert.Empty(t, cmp.A.RootHash)
	assert.True(t, cmp.A.Rooted())
	assert.True(t, cmp.A.Excluded("winapi"))
	assert.True(t, cmp.A.Excluded("windows-sys"))
	assert.False(t, cmp.A.Excluded("serde"))

	assert.Equal(t, "https://example.com/after/Cargo.lock", cmp.B.Source)
	assert.Equal(t, "deadbeef", cmp.B.RootHash)
	assert.True(t, cmp.B.Rooted())
}

func TestLoad_Minimal(t *testing.T) {
	path := writeManifest(t, `
a:
  source: a.lock
b:
  source: b.lock
`)

	cmp, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.False(t, cmp.Verbose)
	assert.False(t, cmp.A.Rooted())
	assert.False(t, cmp.B.Rooted())
}

func TestLoad_MissingSource(t *testing.T) {
	path := writeManifest(t, `
a:
  source: a.lock
b:
  root:
    name: app
`)

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a lockfile source")
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeManifest(t, "a: [unclosed")

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

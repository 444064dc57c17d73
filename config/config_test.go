package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Pagination.MaxEntriesPerPage)
	assert.Equal(t, 20, cfg.Pagination.DefaultEntriesPerPage)
	assert.True(t, cfg.Metadata.Enabled)
	assert.False(t, cfg.Sort.LegacyStringDirection)
	assert.NotEmpty(t, cfg.Licenses.Permissive)
}

func TestParse_KeepsUnsetValues(t *testing.T) {
	cfg := Default()
	err := Parse([]byte(`
pagination:
  max_entries_per_page: 50
sort:
  legacy_string_direction: true
metadata:
  timeout: 3s
licenses:
  denied:
    - AGPL-3.0
`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Pagination.MaxEntriesPerPage)
	assert.Equal(t, 20, cfg.Pagination.DefaultEntriesPerPage)
	assert.True(t, cfg.Sort.LegacyStringDirection)
	assert.Equal(t, 3*time.Second, cfg.Metadata.Timeout)
	assert.Equal(t, "https://api.deps.dev/v3", cfg.Metadata.BaseURL)
	assert.Equal(t, []string{"AGPL-3.0"}, cfg.Licenses.Denied)
	assert.NotEmpty(t, cfg.Licenses.Permissive)
}

func TestParse_Malformed(t *testing.T) {
	cfg := Default()
	assert.Error(t, Parse([]byte("pagination: [unclosed"), &cfg))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sbom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9000\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("SBOM_MAX_ENTRIES_PER_PAGE", "250")
	t.Setenv("DEPSDEV_ENABLED", "false")
	t.Setenv("SBOM_LEGACY_STRING_SORT", "true")
	t.Setenv("DEPSDEV_BASE_URL", "http://localhost:9999/v3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 250, cfg.Pagination.MaxEntriesPerPage)
	assert.False(t, cfg.Metadata.Enabled)
	assert.True(t, cfg.Sort.LegacyStringDirection)
	assert.Equal(t, "http://localhost:9999/v3", cfg.Metadata.BaseURL)
}

package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMergesDefaults(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(name, []byte("site:\n  title: Mine\npaths:\n  output: docs\n"), 0o644))

	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	require.Equal(t, "Mine", cfg.Site.Title)
	require.Equal(t, "docs", cfg.Paths.Output)
	// Untouched keys keep their defaults.
	require.Equal(t, "content", cfg.Paths.Content)
	require.Equal(t, 20, cfg.Build.PostsPerPage)
}

func TestLoadConfigBadYAML(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(name, []byte("site: [broken\n"), 0o644))
	_, err := LoadConfig(name)
	require.Error(t, err)
}

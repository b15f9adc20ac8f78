package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sokosolve.toml")
	require.NoError(t, os.WriteFile(path, []byte("use_hungarian = true\nmax_search = 1000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.UseHungarian)
	require.Equal(t, 1000, cfg.MaxSearch)
	require.Equal(t, Default().MaxDim, cfg.MaxDim, "fields absent from the file keep their default")
}

func TestValidateRejectsBadMaxDim(t *testing.T) {
	cfg := Default()
	cfg.MaxDim = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxDim = 10000
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveMaxSearch(t *testing.T) {
	cfg := Default()
	cfg.MaxSearch = 0
	require.Error(t, cfg.Validate())
}

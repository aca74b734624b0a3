package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	original := configDirFunc
	configDirFunc = func() string { return dir }
	t.Cleanup(func() { configDirFunc = original })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := withConfigDir(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, dir, cfg.DataDir)
	require.Equal(t, filepath.Join(dir, "folio.db"), cfg.DBPath)
	require.Equal(t, 2*time.Second, cfg.TUI.CycleInterval)
	require.Equal(t, time.Second, cfg.TUI.LoadingDelay)
	require.Equal(t, 8, cfg.TUI.CellWidthPx)
	require.Equal(t, 16, cfg.TUI.CellHeightPx)
	require.Equal(t, filepath.Join(dir, "downloads"), cfg.TUI.DownloadDir)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileOverrides(t *testing.T) {
	withConfigDir(t)
	path := filepath.Join(t.TempDir(), "folio.yaml")
	data := `log:
  level: debug
  format: json
tui:
  cycle_interval: 500ms
  cell_width_px: 10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 500*time.Millisecond, cfg.TUI.CycleInterval)
	require.Equal(t, 10, cfg.TUI.CellWidthPx)
	require.Equal(t, time.Second, cfg.TUI.LoadingDelay)
}

func TestLoadEnvOverrides(t *testing.T) {
	withConfigDir(t)
	t.Setenv("FOLIO_LOG_LEVEL", "warn")
	t.Setenv("FOLIO_TUI_LOADING_DELAY", "3s")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 3*time.Second, cfg.TUI.LoadingDelay)
}

func TestLoadDataDirMovesDerivedPaths(t *testing.T) {
	withConfigDir(t)
	custom := t.TempDir()
	t.Setenv("FOLIO_DATA_DIR", custom)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(custom, "folio.db"), cfg.DBPath)
	require.Equal(t, filepath.Join(custom, "folio.log"), cfg.Log.File)
	require.Equal(t, filepath.Join(custom, "downloads"), cfg.TUI.DownloadDir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	withConfigDir(t)
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	withConfigDir(t)

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.TUI.CycleInterval = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.TUI.CellHeightPx = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Log.Format = "xml"
	require.Error(t, cfg.Validate())
}

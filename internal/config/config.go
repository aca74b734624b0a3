// Package config loads folio settings from defaults, a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (FOLIO_LOG_LEVEL, ...).
const EnvPrefix = "FOLIO"

// Config is the resolved application configuration.
type Config struct {
	DataDir string    `mapstructure:"data_dir"`
	DBPath  string    `mapstructure:"db_path"`
	Catalog string    `mapstructure:"catalog"`
	Log     LogConfig `mapstructure:"log"`
	TUI     TUIConfig `mapstructure:"tui"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// TUIConfig tunes the terminal UI timers and geometry.
type TUIConfig struct {
	CycleInterval time.Duration `mapstructure:"cycle_interval"`
	LoadingDelay  time.Duration `mapstructure:"loading_delay"`
	CellWidthPx   int           `mapstructure:"cell_width_px"`
	CellHeightPx  int           `mapstructure:"cell_height_px"`
	EasterEggURL  string        `mapstructure:"easter_egg_url"`
	AltScreen     bool          `mapstructure:"alt_screen"`
	DownloadDir   string        `mapstructure:"download_dir"`
}

var configDirFunc = defaultConfigDir

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "folio")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "folio")
	}
	return ".folio"
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	dir := configDirFunc()
	return &Config{
		DataDir: dir,
		DBPath:  filepath.Join(dir, "folio.db"),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			File:   filepath.Join(dir, "folio.log"),
		},
		TUI: TUIConfig{
			CycleInterval: 2 * time.Second,
			LoadingDelay:  time.Second,
			CellWidthPx:   8,
			CellHeightPx:  16,
			EasterEggURL:  "https://github.com/RahilJain1366",
			AltScreen:     true,
			DownloadDir:   filepath.Join(dir, "downloads"),
		},
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("catalog", cfg.Catalog)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("tui.cycle_interval", cfg.TUI.CycleInterval)
	v.SetDefault("tui.loading_delay", cfg.TUI.LoadingDelay)
	v.SetDefault("tui.cell_width_px", cfg.TUI.CellWidthPx)
	v.SetDefault("tui.cell_height_px", cfg.TUI.CellHeightPx)
	v.SetDefault("tui.easter_egg_url", cfg.TUI.EasterEggURL)
	v.SetDefault("tui.alt_screen", cfg.TUI.AltScreen)
	v.SetDefault("tui.download_dir", cfg.TUI.DownloadDir)
}

// Load resolves configuration. An explicit path must exist; otherwise
// config.yaml in the data dir is used when present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	defaults := DefaultConfig()
	setDefaults(v, defaults)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaults.DataDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
		case path != "" && errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("config file %s not found: %w", path, err)
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize(defaults)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize derives paths that follow data_dir when only the dir was changed.
func (c *Config) normalize(defaults *Config) {
	if c.DataDir == "" {
		c.DataDir = defaults.DataDir
	}
	if c.DBPath == "" || (c.DBPath == defaults.DBPath && c.DataDir != defaults.DataDir) {
		c.DBPath = filepath.Join(c.DataDir, "folio.db")
	}
	if c.Log.File == defaults.Log.File && c.DataDir != defaults.DataDir {
		c.Log.File = filepath.Join(c.DataDir, "folio.log")
	}
	if c.TUI.DownloadDir == "" || (c.TUI.DownloadDir == defaults.TUI.DownloadDir && c.DataDir != defaults.DataDir) {
		c.TUI.DownloadDir = filepath.Join(c.DataDir, "downloads")
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.TUI.CycleInterval <= 0 {
		return fmt.Errorf("tui.cycle_interval must be positive, got %s", c.TUI.CycleInterval)
	}
	if c.TUI.LoadingDelay < 0 {
		return fmt.Errorf("tui.loading_delay must not be negative, got %s", c.TUI.LoadingDelay)
	}
	if c.TUI.CellWidthPx <= 0 || c.TUI.CellHeightPx <= 0 {
		return fmt.Errorf("tui cell size must be positive, got %dx%d", c.TUI.CellWidthPx, c.TUI.CellHeightPx)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}
	return nil
}

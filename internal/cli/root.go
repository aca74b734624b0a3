// Package cli implements the folio command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/folio-tui/folio/internal/config"
	"github.com/folio-tui/folio/internal/db"
	"github.com/folio-tui/folio/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	logFormat      string
	catalogPath    string
	jsonOutput     bool
	jsonlOutput    bool
	nonInteractive bool

	appConfig *config.Config
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A terminal portfolio",
	Long: `folio renders a personal portfolio in the terminal: hero banner, about,
experience, skills, projects and certifications, with a dark/light theme.

Run without a subcommand to open the interactive view.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default <data dir>/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "log format: console or json")
	flags.StringVar(&catalogPath, "catalog", "", "portfolio YAML file (default: built-in)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the TUI")
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	rootCmd.Version = version
	return rootCmd.Execute()
}

func initApp(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := v.BindPFlag("catalog", cmd.Flags().Lookup("catalog")); err != nil {
		return fmt.Errorf("bind catalog flag: %w", err)
	}
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if jsonOutput && jsonlOutput {
		return fmt.Errorf("--json and --jsonl are mutually exclusive")
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}); err != nil {
		return err
	}
	appConfig = cfg
	logger := logging.Component("cli")
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("data_dir", cfg.DataDir).
		Msg("config loaded")
	return nil
}

// GetConfig returns the loaded configuration, or defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	database, err := db.Open(db.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// PreflightError is returned when a command cannot start. It carries a hint
// and a next step for the user.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\nHint: " + e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\nNext: " + e.NextStep)
	}
	return b.String()
}

// PrintError writes err to stderr in the CLI's format.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

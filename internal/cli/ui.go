package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/folio-tui/folio/internal/catalog"
	"github.com/folio-tui/folio/internal/db"
	"github.com/folio-tui/folio/internal/events"
	"github.com/folio-tui/folio/internal/logging"
	"github.com/folio-tui/folio/internal/theme"
	"github.com/folio-tui/folio/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the portfolio TUI",
	Long:  "Launch the interactive portfolio view. This is also what plain `folio` does.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run from a TTY without --non-interactive, or use a subcommand",
			NextStep: "folio catalog export",
		}
	}

	cfg := GetConfig()
	loaded, err := catalog.Resolve(cfg.Catalog)
	if err != nil {
		return &PreflightError{
			Message:  err.Error(),
			Hint:     "Check the catalog file, or omit --catalog to use the built-in portfolio",
			NextStep: "folio catalog validate",
		}
	}

	ctx := context.Background()
	logger := logging.Component("ui")

	// Storage is optional for the TUI: without it the theme lives in memory
	// and nothing is recorded.
	var (
		store    theme.Store
		recorder *events.Recorder
	)
	database, err := openDatabase(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("storage unavailable, running without persistence")
	} else {
		defer database.Close()
		store = db.NewPreferenceRepository(database)
		recorder = events.NewRecorder(db.NewEventRepository(database))
	}

	themes := theme.New(store, theme.WithOnChange(recorder.ThemeToggled))
	logger.Info().
		Str("catalog", loaded.Source).
		Str("theme", themes.Get().String()).
		Msg("starting tui")

	return tui.Run(tui.Options{
		Catalog:       loaded.Catalog,
		Theme:         themes,
		Recorder:      recorder,
		Downloader:    tui.HTTPDownloader{Dir: cfg.TUI.DownloadDir},
		CycleInterval: cfg.TUI.CycleInterval,
		LoadingDelay:  cfg.TUI.LoadingDelay,
		CellWidthPx:   cfg.TUI.CellWidthPx,
		CellHeightPx:  cfg.TUI.CellHeightPx,
		EasterEggURL:  cfg.TUI.EasterEggURL,
		AltScreen:     cfg.TUI.AltScreen,
	})
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-tui/folio/internal/db"
	"github.com/folio-tui/folio/internal/events"
	"github.com/folio-tui/folio/internal/models"
	"github.com/folio-tui/folio/internal/theme"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeSetCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the stored theme",
	Long:  "Read or change the dark/light preference the TUI starts with.",
}

type themeResult struct {
	Theme    models.Theme `json:"theme"`
	Previous models.Theme `json:"previous,omitempty"`
}

func withThemeController(ctx context.Context, fn func(*theme.Controller) error) error {
	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	recorder := events.NewRecorder(db.NewEventRepository(database))
	controller := theme.New(db.NewPreferenceRepository(database), theme.WithOnChange(recorder.ThemeToggled))
	return fn(controller)
}

func printTheme(cmd *cobra.Command, res themeResult) error {
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(cmd.OutOrStdout(), res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Theme)
	return nil
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withThemeController(cmd.Context(), func(c *theme.Controller) error {
			return printTheme(cmd, themeResult{Theme: c.Get()})
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between dark and light",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withThemeController(cmd.Context(), func(c *theme.Controller) error {
			prev := c.Get()
			return printTheme(cmd, themeResult{Theme: c.Toggle(), Previous: prev})
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Store a specific theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.ThemeDark), string(models.ThemeLight)},
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := models.ParseTheme(args[0])
		if err != nil {
			return err
		}
		return withThemeController(cmd.Context(), func(c *theme.Controller) error {
			prev := c.Get()
			return printTheme(cmd, themeResult{Theme: c.Set(target), Previous: prev})
		})
	},
}

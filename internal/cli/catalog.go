package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/folio-tui/folio/internal/catalog"
)

var catalogExportFormat string

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	catalogExportCmd.Flags().StringVarP(&catalogExportFormat, "format", "f", "yaml", "output format: yaml or json")
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the portfolio content",
	Long:  "Validate or print the portfolio catalog that the TUI renders.",
}

type catalogSummary struct {
	Source         string `json:"source"`
	Name           string `json:"name"`
	Socials        int    `json:"socials"`
	Work           int    `json:"work"`
	Projects       int    `json:"projects"`
	OpenSource     int    `json:"open_source"`
	SkillGroups    int    `json:"skill_categories"`
	Certifications int    `json:"certifications"`
	CycleWords     int    `json:"cycle_words"`
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file",
	Long:  "Validate a catalog file, or the configured one when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().Catalog
		if len(args) == 1 {
			path = args[0]
		}
		loaded, err := catalog.Resolve(path)
		if err != nil {
			return err
		}
		c := loaded.Catalog
		summary := catalogSummary{
			Source:         loaded.Source,
			Name:           c.Profile.Name,
			Socials:        len(c.Socials),
			Work:           len(c.Work),
			Projects:       len(c.Projects),
			OpenSource:     len(c.OpenSource),
			SkillGroups:    len(c.Skills),
			Certifications: len(c.Certs),
			CycleWords:     len(c.CycleWords),
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), summary)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog OK: %s\n", summary.Source)
		return writeTable(out, []string{"SECTION", "ENTRIES"}, [][]string{
			{"socials", fmt.Sprint(summary.Socials)},
			{"work", fmt.Sprint(summary.Work)},
			{"projects", fmt.Sprint(summary.Projects)},
			{"open source", fmt.Sprint(summary.OpenSource)},
			{"skill categories", fmt.Sprint(summary.SkillGroups)},
			{"certifications", fmt.Sprint(summary.Certifications)},
			{"cycle words", fmt.Sprint(summary.CycleWords)},
		})
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the resolved catalog",
	Long:  "Print the resolved catalog as YAML (a starting point for --catalog) or JSON.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := catalog.Resolve(GetConfig().Catalog)
		if err != nil {
			return err
		}
		format := strings.ToLower(strings.TrimSpace(catalogExportFormat))
		if IsJSONOutput() || IsJSONLOutput() {
			format = "json"
		}
		switch format {
		case "json":
			return WriteOutput(cmd.OutOrStdout(), loaded.Catalog)
		case "yaml", "yml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(loaded.Catalog); err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			return enc.Close()
		default:
			return fmt.Errorf("unknown format %q: use yaml or json", catalogExportFormat)
		}
	},
}

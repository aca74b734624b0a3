package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio-tui/folio/internal/db"
	"github.com/folio-tui/folio/internal/models"
)

var (
	eventsLimit     int
	eventsType      string
	eventsSince     time.Duration
	eventsOlderThan time.Duration
)

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsStatsCmd)
	eventsCmd.AddCommand(eventsPruneCmd)

	eventsCmd.Flags().IntVarP(&eventsLimit, "limit", "n", 50, "maximum events to show")
	eventsCmd.Flags().StringVarP(&eventsType, "type", "t", "", "only show this event type (e.g. theme.toggled)")
	eventsCmd.Flags().DurationVar(&eventsSince, "since", 0, "only show events newer than this (e.g. 24h)")
	eventsPruneCmd.Flags().DurationVar(&eventsOlderThan, "older-than", 30*24*time.Hour, "delete events older than this")
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent local events",
	Long:  "List theme changes, navigation and easter egg finds recorded on this machine.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		q := db.EventQuery{Limit: eventsLimit}
		if t := strings.TrimSpace(eventsType); t != "" {
			et := models.EventType(t)
			q.Type = &et
		}
		if eventsSince > 0 {
			since := time.Now().Add(-eventsSince)
			q.Since = &since
		}

		page, err := db.NewEventRepository(database).List(ctx, q)
		if err != nil {
			return err
		}
		if page.Events == nil {
			page.Events = []*models.Event{}
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), page.Events)
		}
		if len(page.Events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No events recorded.")
			return nil
		}
		rows := make([][]string, 0, len(page.Events))
		for _, ev := range page.Events {
			rows = append(rows, []string{
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				string(ev.Type),
				truncate(ev.EntityID, 24),
				truncate(string(ev.Payload), 60),
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"TIME", "TYPE", "ENTITY", "PAYLOAD"}, rows)
	},
}

var eventsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count events by type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		counts, err := db.NewEventRepository(database).CountByType(ctx)
		if err != nil {
			return err
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), counts)
		}
		types := make([]string, 0, len(counts))
		for t := range counts {
			types = append(types, string(t))
		}
		sort.Strings(types)
		rows := make([][]string, 0, len(types))
		for _, t := range types {
			rows = append(rows, []string{t, fmt.Sprint(counts[models.EventType(t)])})
		}
		return writeTable(cmd.OutOrStdout(), []string{"TYPE", "COUNT"}, rows)
	},
}

var eventsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if eventsOlderThan <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}
		ctx := cmd.Context()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		n, err := db.NewEventRepository(database).Prune(ctx, time.Now().Add(-eventsOlderThan))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d events.\n", n)
		return nil
	},
}

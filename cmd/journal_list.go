/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/closewatch/closewatch/internal/colors"
	"github.com/closewatch/closewatch/internal/config"
	"github.com/closewatch/closewatch/internal/journal"
)

var (
	journalListWindow string
	journalListEvent  string
	journalListLimit  int
)

// journalListCmd represents the journal list command
var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent journal entries",
	Long: `List recent journal entries, oldest first.

USAGE:
    closewatch journal list [OPTIONS]

OPTIONS:
    --window=<name>   Only entries for this window
    --event=<name>    Only entries for this event (e.g. close, dismiss-signal)
    --limit=<n>       At most n entries, keeping the most recent (default: 20)
    -h, --help        Show this help

The time column honors the time_format config key (relative or absolute),
and the layout honors table_format (default, minimal, fancy).`,
	RunE: runJournalList,
}

func runJournalList(cmd *cobra.Command, args []string) error {
	config.Load()

	store, err := journalStoreFunc()
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = store.Close() }()

	entries, err := store.List(journal.Filter{
		Window: journalListWindow,
		Event:  journalListEvent,
		Limit:  journalListLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to list journal entries: %w", err)
	}
	if len(entries) == 0 {
		colors.Info("No journal entries")
		return nil
	}

	printJournalEntries(cmd.OutOrStdout(), entries)
	return nil
}

func printJournalEntries(w io.Writer, entries []journal.Entry) {
	timeFormat := config.Get("time_format", "relative")

	switch config.Get("table_format", "default") {
	case "minimal":
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				formatEntryTime(e.CreatedAt, timeFormat), e.Event, e.Window, e.Watcher, e.Detail)
		}
	case "fancy":
		fmt.Fprintf(w, "%-16s %-20s %-12s %-12s %s\n", "WHEN", "EVENT", "WINDOW", "WATCHER", "DETAIL")
		fmt.Fprintln(w, strings.Repeat("-", 72))
		for _, e := range entries {
			printJournalRow(w, e, timeFormat)
		}
	default:
		for _, e := range entries {
			printJournalRow(w, e, timeFormat)
		}
	}
}

func printJournalRow(w io.Writer, e journal.Entry, timeFormat string) {
	fmt.Fprintf(w, "%-16s %-20s %-12s %-12s %s\n",
		formatEntryTime(e.CreatedAt, timeFormat), e.Event, e.Window, e.Watcher, e.Detail)
}

// formatEntryTime renders a stored UTC timestamp for display. Unparseable
// values pass through untouched rather than erroring a whole listing.
func formatEntryTime(createdAt, format string) string {
	ts, err := time.Parse("2006-01-02T15:04:05Z", createdAt)
	if err != nil {
		return createdAt
	}
	if format == "absolute" {
		return ts.Local().Format("2006-01-02 15:04:05")
	}
	return humanize.Time(ts)
}

func init() {
	journalCmd.AddCommand(journalListCmd)

	journalListCmd.Flags().StringVar(&journalListWindow, "window", "", "Only entries for this window")
	journalListCmd.Flags().StringVar(&journalListEvent, "event", "", "Only entries for this event")
	journalListCmd.Flags().IntVar(&journalListLimit, "limit", 20, "At most n entries, keeping the most recent")
}

/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/closewatch/closewatch/internal/config"
)

// journalCleanupCmd represents the journal cleanup command
var journalCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove old journal entries",
	Long: `Remove journal entries older than a threshold.

Entries older than the configured auto-cleanup days are deleted. This keeps
the journal from growing without bound.

USAGE:
    closewatch journal cleanup [OPTIONS]

OPTIONS:
    --days=<n>    Remove entries older than n days (default: auto_cleanup_days)
    --dry-run     Report what would be removed without removing
    -h, --help    Show this help`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		days, err := cmd.Flags().GetInt("days")
		if err != nil {
			return fmt.Errorf("invalid days value: %w", err)
		}
		// If days is 0 (default), use config value
		if days == 0 {
			days = config.GetInt("auto_cleanup_days", 30)
		}
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return fmt.Errorf("invalid dry-run flag: %w", err)
		}
		if days <= 0 {
			return fmt.Errorf("days must be a positive integer")
		}

		store, err := journalStoreFunc()
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer func() { _ = store.Close() }()

		removed, err := store.Cleanup(days, dryRun)
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}

		what := english.Plural(removed, "entry", "entries")
		if dryRun {
			cmd.Printf("Would remove %s older than %d days\n", what, days)
			return nil
		}
		cmd.Printf("Removed %s older than %d days\n", what, days)
		return nil
	},
}

func init() {
	journalCmd.AddCommand(journalCleanupCmd)

	// Default days 0 means "use config value"
	journalCleanupCmd.Flags().Int("days", 0, "Remove entries older than N days (default: auto_cleanup_days config value)")
	journalCleanupCmd.Flags().Bool("dry-run", false, "Report what would be removed without removing")
}

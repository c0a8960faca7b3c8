/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/closewatch/closewatch/internal/journal"
)

// journalCmd groups the journal subcommands.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the watcher lifecycle journal",
	Long: `Inspect the watcher lifecycle journal.

Every registration, dismissal, veto, and activation decision the demo makes
is appended to the journal. The subcommands list it, prune it, and locate it.

USAGE:
    closewatch journal <list|cleanup|path> [OPTIONS]`,
}

// journalStoreFunc opens the journal store. Can be changed for testing.
var journalStoreFunc = journal.NewFromConfig

func init() {
	rootCmd.AddCommand(journalCmd)
}

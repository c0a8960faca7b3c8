/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/closewatch/closewatch/internal/colors"
	"github.com/closewatch/closewatch/internal/config"
	"github.com/closewatch/closewatch/internal/journal"
)

// journalPathCmd represents the journal path command
var journalPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the journal database location",
	Long: `Print the journal database location.

USAGE:
    closewatch journal path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		if !config.GetBool("journal_enabled", true) ||
			config.Get("journal_backend", journal.BackendSQLite) == journal.BackendMemory {
			colors.Info("journal is in-memory; no file on disk")
			return nil
		}
		cmd.Println(journal.DefaultPath())
		return nil
	},
}

func init() {
	journalCmd.AddCommand(journalPathCmd)
}

/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/closewatch/closewatch/internal/version"
)

// Version is the version string shown in help and the version command.
// Kept as a package var so tests can pin it.
var Version = version.String()

// versionOutputWriter is the writer used by PrintVersion. Can be changed for testing.
var versionOutputWriter io.Writer = os.Stdout

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show version information.`,
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion()
	},
}

// GetVersion returns the version string.
func GetVersion() string {
	return Version
}

// PrintVersion prints the version line.
func PrintVersion() {
	fmt.Fprintf(versionOutputWriter, "closewatch v%s\n", GetVersion())
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

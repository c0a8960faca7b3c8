/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "closewatch",
	Short: "Escape-key dismissal for terminal dialogs, the platform way.",
	Long:  `Escape-key dismissal for terminal dialogs, the platform way.`,
}

// outputWriter is the writer used by PrintHelp. Can be changed for testing.
var outputWriter io.Writer

// Execute runs the root command. Called once from main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		PrintHelp(cmd)
	})
}

// PrintHelp prints the fixed-order command overview.
func PrintHelp(cmd *cobra.Command) {
	w := outputWriter
	if w == nil {
		w = os.Stdout
	}

	commandOrder := []string{
		"demo",
		"journal",
		"config",
		"help",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Root().Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`closewatch v%s

Escape-key dismissal for terminal dialogs, the platform way.

USAGE:
    closewatch [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, cmd.Root().Version, strings.Join(cmdLines, "\n"))
	fmt.Fprint(w, helpText)
}

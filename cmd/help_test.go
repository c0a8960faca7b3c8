package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestPrintHelp(t *testing.T) {
	// Create a root command with some subcommands
	rootCmd := &cobra.Command{
		Use:     "closewatch",
		Short:   "Test root",
		Long:    "Test root long",
		Version: "0.1.0",
	}
	// Add subcommands in the order expected by PrintHelp
	demoCmd := &cobra.Command{Use: "demo", Short: "Run the interactive close watcher workbench"}
	journalCmd := &cobra.Command{Use: "journal", Short: "Inspect the watcher lifecycle journal"}
	configCmd := &cobra.Command{Use: "config", Short: "Show resolved configuration"}
	helpCmd := &cobra.Command{Use: "help", Short: "Show this help message"}
	versionCmd := &cobra.Command{Use: "version", Short: "Show version information"}

	rootCmd.AddCommand(demoCmd, journalCmd, configCmd, helpCmd, versionCmd)

	// Capture output
	var buf bytes.Buffer
	outputWriter = &buf
	defer func() { outputWriter = nil }()

	PrintHelp(rootCmd)
	output := buf.String()

	// Basic assertions
	if !strings.Contains(output, "closewatch v0.1.0") {
		t.Error("Help output should contain version")
	}
	if !strings.Contains(output, "Escape-key dismissal for terminal dialogs, the platform way.") {
		t.Error("Help output should contain description")
	}
	if !strings.Contains(output, "USAGE:") {
		t.Error("Help output should contain USAGE section")
	}
	if !strings.Contains(output, "COMMANDS:") {
		t.Error("Help output should contain COMMANDS section")
	}
	if !strings.Contains(output, "OPTIONS:") {
		t.Error("Help output should contain OPTIONS section")
	}
	// Check that each command appears
	for _, cmd := range []string{"demo", "journal", "config", "help", "version"} {
		if !strings.Contains(output, cmd) {
			t.Errorf("Help output should contain command %q", cmd)
		}
	}
}

func TestPrintHelpFromSubcommand(t *testing.T) {
	rootCmd := &cobra.Command{
		Use:     "closewatch",
		Version: "0.1.0",
	}
	journalCmd := &cobra.Command{Use: "journal", Short: "Inspect the watcher lifecycle journal"}
	rootCmd.AddCommand(journalCmd)

	var buf bytes.Buffer
	outputWriter = &buf
	defer func() { outputWriter = nil }()

	// Help invoked on a subcommand still lists the root's commands.
	PrintHelp(journalCmd)
	output := buf.String()

	if !strings.Contains(output, "closewatch v0.1.0") {
		t.Error("Help output should contain root version")
	}
	if !strings.Contains(output, "journal") {
		t.Error("Help output should list root subcommands")
	}
}

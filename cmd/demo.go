/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/closewatch/closewatch/internal/config"
	"github.com/closewatch/closewatch/internal/errors"
	"github.com/closewatch/closewatch/internal/journal"
	"github.com/closewatch/closewatch/internal/logging"
	"github.com/closewatch/closewatch/internal/tui"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive close-watcher workbench",
	Long: `Run the interactive close-watcher workbench.

USAGE:
    closewatch demo

KEY BINDINGS:
    d        open a dialog (the keystroke grants it a dismissal slot)
    n        open a dialog without activation (piles into the newest slot)
    p        toggle a popover
    s        open a prompt dialog (dirty input vetoes the first escape)
    esc      dismiss the newest group, last registered first
    g        toggle the group/budget debug panel
    j        toggle the journal tail pane
    q        quit

Every watcher lifecycle event is appended to the journal; inspect it
afterwards with "closewatch journal list".`,
	RunE: runDemo,
}

// demoRunner runs the bubbletea program. Can be changed for testing.
var demoRunner tui.ProgramRunner = tui.NewDefaultProgramRunner()

// demoHandler reports setup problems before the workbench takes the screen.
var demoHandler errors.ErrorHandler = errors.NewDefaultCLIHandler()

func runDemo(cmd *cobra.Command, args []string) error {
	config.Load()
	if err := logging.InitGlobal(); err != nil {
		demoHandler.Warning(fmt.Sprintf("logging unavailable: %v", err))
	}
	defer func() { _ = logging.ShutdownGlobal() }()

	store, err := journal.NewFromConfig()
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = store.Close() }()

	model := tui.NewModel(tui.Deps{Store: store})

	if config.GetBool("watch_config", false) {
		if runner, ok := demoRunner.(*tui.DefaultProgramRunner); ok {
			watcher, werr := config.NewWatcher(func() {
				runner.Send(tui.ConfigReloadedMsg{})
			})
			switch {
			case werr != nil:
				demoHandler.Warning(fmt.Sprintf("config watch unavailable: %v", werr))
			case watcher.Start() != nil:
				demoHandler.Warning("config watch failed to start")
			default:
				defer func() { _ = watcher.Stop() }()
			}
		}
	}

	if err := demoRunner.Run(model); err != nil {
		return fmt.Errorf("workbench exited with error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

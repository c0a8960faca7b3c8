/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/closewatch/closewatch/internal/config"
)

// configCmd groups the config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration",
	Long: `Show resolved configuration.

Values come from defaults, then the TOML config file, then CLOSEWATCH_*
environment variables; later sources win.

USAGE:
    closewatch config <show|path> [OPTIONS]`,
}

var configShowKey string

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print resolved configuration values",
	Long: `Print resolved configuration values, one "key = value" per line.

USAGE:
    closewatch config show [OPTIONS]

OPTIONS:
    --key=<name>   Print only this key's value
    -h, --help     Show this help`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		if configShowKey != "" {
			value, ok := config.All()[configShowKey]
			if !ok {
				return fmt.Errorf("unknown configuration key: %s", configShowKey)
			}
			cmd.Println(value)
			return nil
		}

		all := config.All()
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("%s = %s\n", k, all[k])
		}
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Long: `Print the config file location.

USAGE:
    closewatch config path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		cmd.Println(config.FilePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configShowCmd.Flags().StringVar(&configShowKey, "key", "", "Print only this key's value")
}

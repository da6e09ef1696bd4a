// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/internal/config"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool
)

// NewRootCmd creates the root command for the rulekit CLI. Running
// rulekit with no subcommand starts the MCP server, since that is
// what MCP host configs invoke.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rulekit",
		Short: "MCP server for Cursor rules and AGENTS.md guidance",
		Long: `rulekit serves a project's Cursor rules (.cursor/rules/*.mdc) and its
AGENTS.md guidance over the Model Context Protocol, so any MCP-capable
AI tool can load and follow the project's conventions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the config file (default: platform config home)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// loadConfig reads the config file named by --config, or the
// standard location when the flag is unset.
func loadConfig() (config.Config, error) {
	if configFlag != "" {
		return config.LoadFrom(configFlag)
	}
	return config.Load()
}

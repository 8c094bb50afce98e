// Package cmd implements the CLI commands for the Tokopedia client API server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tokoclient",
	Short: "Serve Tokopedia search and product lookups over HTTP",
	Long: "A stateless HTTP gateway that translates simple path-based requests into " +
		"Tokopedia GraphQL calls and returns normalized JSON, HTML or plain text.",
	SilenceUsage: true,
	// Running the binary without a subcommand starts the server.
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: search ./, ./config, /etc/tokoclient)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

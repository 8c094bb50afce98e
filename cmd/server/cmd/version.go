package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokoclient/backend/internal/version"
)

func init() {
	rootCmd.AddCommand(versionCommand())
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build identifier",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Description(version.BuildID()))
		},
	}
}

package cmd

import (
	"fmt"

	"chunkexport/pkg/logging"
	"chunkexport/pkg/version"

	"github.com/spf13/cobra"
)

var debug bool

// RootCmd exports the project tree next to the binary when called without subcommands.
var RootCmd = &cobra.Command{
	Use:   version.AppName,
	Short: "chunkexport packs project sources into size-bounded text chunks",
	Long: `chunkexport walks the directory containing the binary, selects the source,
schema and config files of the project and concatenates them into numbered
chunk files small enough to paste into context-limited tools.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Setup(debug, version.AppName, version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.OutOrStdout(), logging.Logger)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging at debug level")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

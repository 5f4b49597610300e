// internal/cli/show_config.go
package mockagent

import (
	"github.com/spf13/cobra"
)

var showConfigPath string

// showConfigCmd implements 'show config', which prints the configuration a
// training run would use after defaults are applied.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved run configuration",
	Long:  `Show the configuration that 'train' would use for the given file, including the default substituted for a missing or unreadable file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig(cmd.OutOrStdout(), showConfigPath)
	},
}

func init() {
	showConfigCmd.Flags().StringVar(&showConfigPath, "config", "", "path to the configuration JSON file")
	showCmd.AddCommand(showConfigCmd)
}

// internal/cli/mocktest.go
package mockagent

import (
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd implements 'test', a placeholder that acknowledges the call and exits.
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Simulate a testing run",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Mock test command executed.")
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}

// internal/cli/train.go
package mockagent

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	trainConfigPath string
	trainOutputPath string
	sleepFn         = time.Sleep
)

// trainCmd implements 'train', which runs the simulated training job.
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Simulate a training run",
	Long: `The 'train' command loads the configuration file, simulates one step of work per
second for sleep_duration steps (default 20), then writes model.zip and metrics.log into
the output directory. Configuration and file write problems are reported and the run
still completes; only a failure to create the output directory aborts it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runTrain(cmd.OutOrStdout(), trainConfigPath, trainOutputPath)
	},
}

func init() {
	trainCmd.Flags().StringVar(&trainConfigPath, "config", "", "path to the configuration JSON file")
	trainCmd.Flags().StringVar(&trainOutputPath, "output-path", "", "directory that receives model.zip and metrics.log")
	_ = trainCmd.MarkFlagRequired("config")
	_ = trainCmd.MarkFlagRequired("output-path")

	rootCmd.AddCommand(trainCmd)
}

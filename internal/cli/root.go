// internal/cli/root.go
package mockagent

import (
	"errors"
	"fmt"
	"os"

	"github.com/mwiater/mockagent/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// errNoSubcommand is returned when the binary is invoked without train or test.
var errNoSubcommand = errors.New("a subcommand is required (train or test)")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mock-agent",
	Short: "mock-agent: stand-in training agent for exercising orchestration pipelines",
	Long: `mock-agent behaves like a training agent without doing any training: it reads a
configuration file, reports simulated progress one line per second, and writes a
placeholder model artifact and metrics log.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(viper.GetString("logFile")); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return errNoSubcommand
	},
}

// Execute runs the command tree and exits non-zero on any returned error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("logFile", "", "append timestamped run events to this file")
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

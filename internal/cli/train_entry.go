package mockagent

import (
	"io"

	"github.com/mwiater/mockagent/internal/trainer"
)

// runTrain executes a training run writing progress to out.
func runTrain(out io.Writer, configPath, outputPath string) error {
	_, err := trainer.Run(trainer.Options{
		ConfigPath: configPath,
		OutputPath: outputPath,
		Out:        out,
		Sleep:      sleepFn,
	})
	return err
}

// internal/trainer/trainer.go
// Package trainer runs the simulated training job: it loads the run configuration,
// steps through a timed work loop and writes placeholder artifacts.
package trainer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mwiater/mockagent/internal/appconfig"
	"github.com/mwiater/mockagent/internal/logging"
	"github.com/mwiater/mockagent/internal/util"
)

const (
	// ArtifactFileName is the placeholder model written into the output directory.
	ArtifactFileName = "model.zip"
	// MetricsFileName is the placeholder metrics log written into the output directory.
	MetricsFileName = "metrics.log"
	// ArtifactContent is the exact content of ArtifactFileName.
	ArtifactContent = "This is a dummy model artifact."
	// MetricsContent is the exact content of MetricsFileName.
	MetricsContent = "pnl,10.5\nsharpe,0.8\n"

	startBanner  = "--- Mock Agent Training Run Initializing ---"
	finishBanner = "--- Mock Agent Training Run Finished ---"

	defaultStepInterval = time.Second
)

var (
	bannerColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
)

// Options controls a single training run.
type Options struct {
	ConfigPath string
	OutputPath string
	// Out receives every progress line. Defaults to os.Stdout.
	Out io.Writer
	// StepInterval is the pause after each work step. Defaults to one second.
	StepInterval time.Duration
	// Sleep suspends the run between steps. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Result summarizes a completed run.
type Result struct {
	Config       appconfig.Config
	Steps        int
	ArtifactPath string
	MetricsPath  string
	// Errors holds the non-fatal failures in the order they occurred.
	Errors []error
}

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

type run struct {
	opts   Options
	result Result
}

// Run executes the simulated job. The only error returned is a failure to create
// the output directory; configuration and file write failures are reported on
// Out, collected in Result.Errors, and the run continues to completion.
func Run(opts Options) (Result, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.StepInterval <= 0 {
		opts.StepInterval = defaultStepInterval
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	r := &run{opts: opts}
	r.emitColored(bannerColor, startBanner)

	if err := util.EnsureDir(opts.OutputPath); err != nil {
		return r.result, fmt.Errorf("create output directory %q: %w", opts.OutputPath, err)
	}

	r.loadConfig()
	r.work()

	r.result.ArtifactPath = filepath.Join(opts.OutputPath, ArtifactFileName)
	if err := util.WriteFile(r.result.ArtifactPath, []byte(ArtifactContent)); err != nil {
		r.fail(fmt.Errorf("create dummy artifact at %s: %w", r.result.ArtifactPath, err),
			"Error creating dummy artifact at %s: %v", r.result.ArtifactPath, err)
	} else {
		r.emit("Dummy artifact created at: %s", r.result.ArtifactPath)
	}

	r.result.MetricsPath = filepath.Join(opts.OutputPath, MetricsFileName)
	if err := util.WriteFile(r.result.MetricsPath, []byte(MetricsContent)); err != nil {
		r.fail(fmt.Errorf("write dummy metrics to %s: %w", r.result.MetricsPath, err),
			"Error writing dummy metrics to %s: %v", r.result.MetricsPath, err)
	} else {
		r.emit("Dummy metrics written to: %s", r.result.MetricsPath)
	}

	r.emitColored(bannerColor, finishBanner)
	return r.result, nil
}

func (r *run) loadConfig() {
	cfg, err := appconfig.Load(r.opts.ConfigPath)
	if err != nil {
		cfg = appconfig.Default()
		r.fail(fmt.Errorf("load config: %w", err),
			"Error loading config from %s: %v", r.opts.ConfigPath, err)
	} else {
		r.emit("Configuration loaded. Will simulate work for %d seconds.", cfg.SleepDuration)
	}
	r.result.Config = cfg
	r.result.Steps = cfg.Steps()
}

// work emits one line per step and pauses after each.
func (r *run) work() {
	n := r.result.Steps
	for i := 1; i <= n; i++ {
		r.emit("Step %d/%d: Processing data...", i, n)
		r.opts.Sleep(r.opts.StepInterval)
	}
}

func (r *run) fail(err error, format string, args ...any) {
	r.result.Errors = append(r.result.Errors, err)
	r.emitColored(errorColor, fmt.Sprintf(format, args...))
}

func (r *run) emit(format string, args ...any) {
	r.write(fmt.Sprintf(format, args...), nil)
}

func (r *run) emitColored(c *color.Color, line string) {
	r.write(line, c)
}

// write sends one line to Out and the event log. Each line is a single write,
// followed by a flush when Out buffers, so a reader tailing the stream sees it immediately.
func (r *run) write(line string, c *color.Color) {
	text := line
	if c != nil {
		text = c.Sprint(line)
	}
	_, _ = io.WriteString(r.opts.Out, text+"\n")
	if f, ok := r.opts.Out.(flusher); ok {
		_ = f.Flush()
	}
	logging.LogEvent("%s", line)
}

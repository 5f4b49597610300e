package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the resolved configuration. loadErr, when non-nil, is reported
// and the fallback values are shown instead.
func ShowConfig(out io.Writer, cfg Config, loadErr error) {
	if loadErr != nil {
		fmt.Fprintf(out, "Config not loaded (using defaults): %v\n\n", loadErr)
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	}

	fmt.Fprintln(out, "Current configuration:")
	pp.Fprintln(out, cfg)
	fmt.Fprintf(out, "  Simulated steps: %d\n", cfg.Steps())
}

package mockagent

import (
	"io"

	"github.com/mwiater/mockagent/internal/appconfig"
)

func runShowConfig(out io.Writer, path string) {
	cfg, err := appconfig.Load(path)
	if err != nil {
		cfg = appconfig.Default()
	}
	appconfig.ShowConfig(out, cfg, err)
}

// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting the agent's run configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultSleepDuration is the number of simulated work steps used when the
	// configuration omits sleep_duration or cannot be loaded.
	DefaultSleepDuration = 20
	// sleepDurationKey is the only key the agent reads from its configuration file.
	sleepDurationKey = "sleep_duration"
)

// configSchema describes the accepted shape of a configuration document.
// Unknown keys are allowed and ignored.
const configSchema = `{
  "type": "object",
  "properties": {
    "sleep_duration": { "type": "integer" }
  }
}`

// Config represents the run configuration of a simulated training job.
type Config struct {
	SleepDuration int    `json:"sleep_duration"`
	ConfigPath    string `json:"-"`
}

// Default returns the configuration used when no file could be loaded.
func Default() Config {
	return Config{SleepDuration: DefaultSleepDuration}
}

// Steps returns the number of work loop iterations, treating negative durations as zero.
func (c Config) Steps() int {
	if c.SleepDuration < 0 {
		return 0
	}
	return c.SleepDuration
}

// Load reads the configuration at path. A missing sleep_duration key resolves to
// DefaultSleepDuration. An unreadable file, invalid JSON or a document that does not
// match the expected shape returns an error; callers fall back to Default.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Config{}, errors.New("no configuration path given")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := validateDocument(data); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	config, err := decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

// validateDocument checks data against configSchema.
func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return errors.New(strings.Join(details, "; "))
}

// decode reads sleep_duration by its exact key, applying DefaultSleepDuration when
// the key is absent. Other keys, including case variants of sleep_duration, are ignored.
func decode(data []byte) (Config, error) {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return Config{}, err
	}

	config := Default()
	raw, ok := document[sleepDurationKey]
	if !ok {
		return config, nil
	}

	steps, err := parseSteps(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", sleepDurationKey, err)
	}
	config.SleepDuration = steps
	return config, nil
}

// parseSteps converts a JSON integer, including whole-number forms such as 5.0 or
// 2e1, to an int. Values outside the int range are rejected.
func parseSteps(raw json.RawMessage) (int, error) {
	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, err
	}
	value, ok := new(big.Rat).SetString(number.String())
	if !ok || !value.IsInt() {
		return 0, fmt.Errorf("%s is not an integer", number)
	}
	n := value.Num()
	if !n.IsInt64() || n.Int64() > math.MaxInt || n.Int64() < math.MinInt {
		return 0, fmt.Errorf("%s is out of range", number)
	}
	return int(n.Int64()), nil
}

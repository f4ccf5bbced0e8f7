// Package config loads the optional CLI configuration file: the halt
// timeout and form-value overrides used for local testing. The
// currency/country/phone formatter slots (internal/ext) are host-injected
// rather than config-driven — this binary has no built-in implementation
// for any of them to fall back to, so there is nothing for a config flag to
// switch on; an embedding host wires them programmatically before calling
// Evaluate/Analyze.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Config is the shape of the optional --config YAML file.
type Config struct {
	// HaltTimeoutMillis bounds the wall-clock time of an eval run; zero
	// means no timeout. Realized as a shouldHalt deadline closure built once
	// per run, so every identifier evaluated by one command shares the same
	// deadline. The analyzer does not consult it.
	HaltTimeoutMillis int64 `yaml:"haltTimeoutMillis"`

	// FormValues overrides @-prefixed identifiers for local testing,
	// bypassing whatever a real host would otherwise supply.
	FormValues map[string]any `yaml:"formValues"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// HaltDeadline builds a shouldHalt predicate from the configured timeout,
// starting the clock at the moment this is called. A zero timeout yields a
// predicate that never fires.
func (c *Config) HaltDeadline() func() bool {
	if c == nil || c.HaltTimeoutMillis <= 0 {
		return func() bool { return false }
	}
	deadline := time.Now().Add(time.Duration(c.HaltTimeoutMillis) * time.Millisecond)
	return func() bool { return time.Now().After(deadline) }
}

// FormValueLookup returns the configured FormValues map as-is (nil for a
// nil Config); the CLI adapts it into the evaluator's and analyzer's
// callbacks.
func (c *Config) FormValueLookup() map[string]any {
	if c == nil {
		return nil
	}
	return c.FormValues
}

package cliconfig

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/et/internal/batch"
	"github.com/bft-labs/et/pkg/log"
)

// Output modes.
const (
	OutputEpoch = "epoch"
	OutputISO   = "iso"
)

// Config holds CLI configuration for et.
type Config struct {
	// OnError is the batch policy for malformed stdin lines: abort, skip or report.
	OnError string
	// Output selects how results are printed: epoch or iso.
	Output string
	// LogLevel is the minimum level written to stderr.
	LogLevel string
	// Lenient makes `et parse` accept non-canonical timestamps.
	Lenient bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OnError:  string(batch.PolicyAbort),
		Output:   OutputEpoch,
		LogLevel: "warn",
	}
}

// Validate checks the configuration for errors and normalizes values.
func (c *Config) Validate() error {
	policy, err := batch.ParsePolicy(c.OnError)
	if err != nil {
		return err
	}
	c.OnError = string(policy)

	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output != OutputEpoch && c.Output != OutputISO {
		return fmt.Errorf("unknown output %q (expected epoch or iso)", c.Output)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	return nil
}

// Policy returns the validated batch policy.
func (c Config) Policy() batch.Policy {
	return batch.Policy(c.OnError)
}

// Level returns the zerolog level for LogLevel, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

package cliconfig

import "os"

// Environment variables read by ApplyEnvConfig.
const (
	EnvOnError  = "ET_ON_ERROR"
	EnvOutput   = "ET_OUTPUT"
	EnvLogLevel = "ET_LOG_LEVEL"
	EnvLenient  = "ET_LENIENT"
	EnvConfig   = "ET_CONFIG"
)

// ApplyEnvConfig applies configuration from environment variables (ET_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("on-error", os.Getenv(EnvOnError), &cfg.OnError)
	s.setString("output", os.Getenv(EnvOutput), &cfg.Output)
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)
	s.setBoolFromString("lenient", os.Getenv(EnvLenient), &cfg.Lenient)
}

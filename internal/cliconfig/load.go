package cliconfig

import "fmt"

// Load resolves the final configuration with precedence
// flags > environment > file > defaults. cfg must already hold defaults
// overlaid with flag values; changed names the flags the user set.
// An empty path means DefaultConfigPath, which may be absent.
func Load(cfg *Config, path string, changed map[string]bool) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if path != "" && (explicit || FileExists(path)) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		ApplyFileConfig(cfg, fc, changed)
	}

	ApplyEnvConfig(cfg, changed)

	return cfg.Validate()
}

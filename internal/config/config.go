package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds project configuration loaded from wyst.yaml.
type Config struct {
	// Color controls ANSI output: "always", "never", or "" for
	// auto-detection from the terminal.
	Color string `yaml:"color,omitempty"`

	// IncludePaths are extra directories tooling searches when resolving
	// #include directives. The parser itself never reads these; it only
	// classifies the directive.
	IncludePaths []string `yaml:"include_paths,omitempty"`

	LSP LSPConfig `yaml:"lsp,omitempty"`
}

// LSPConfig holds language-server settings.
type LSPConfig struct {
	// LogFile redirects server logging away from stderr when set.
	LogFile string `yaml:"log_file,omitempty"`
}

// configFileName is the configuration file path relative to the project root.
const configFileName = "wyst.yaml"

// Load reads the project configuration from wyst.yaml in the given
// directory. If the file doesn't exist, it returns a zero Config (not an
// error).
func Load(projectDir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(projectDir, configFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	return cfg, nil
}

// Save writes the config to wyst.yaml in the given directory.
func Save(projectDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	path := filepath.Join(projectDir, configFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configFileName, err)
	}

	return nil
}

// ColorEnabled resolves the color setting against the auto-detected
// default.
func (c *Config) ColorEnabled(autoDetected bool) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return autoDetected
	}
}

// Package config loads the optional .cc0.yaml project file that
// supplies defaults for the cc0 CLI: output filename, target triple,
// and optimization level. CLI flags always override values loaded
// here.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// FileName is the project config file cc0 looks for in the current
// working directory.
const FileName = ".cc0.yaml"

// Config holds the subset of compiler defaults a project file may
// override. Zero values mean "not set" so callers can distinguish an
// absent field from an explicit override.
type Config struct {
	Output       string `yaml:"output"`
	TargetTriple string `yaml:"target_triple"`
	OptLevel     string `yaml:"opt_level"`
}

// Load reads and parses path. A missing file is not an error: it
// returns a zero-value Config so the caller falls back to built-in
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault loads FileName from the current working directory.
func LoadDefault() (*Config, error) {
	return Load(FileName)
}

// ApplyDefaults fills each empty argument from the matching field of
// c and returns the three values, leaving non-empty arguments
// untouched. This lets a config file fill
// in what the CLI didn't specify without ever overriding a flag the
// user actually passed.
func (c *Config) ApplyDefaults(output, targetTriple, optLevel string) (string, string, string) {
	if output == "" {
		output = c.Output
	}
	if targetTriple == "" {
		targetTriple = c.TargetTriple
	}
	if optLevel == "" {
		optLevel = c.OptLevel
	}
	return output, targetTriple, optLevel
}

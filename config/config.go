/*
Package config loads subc's optional project file, subc.yaml. None of
its settings change what a program compiles to semantically; they
govern driver-level concerns — where output lands and whether
diagnostics are colorized. gopkg.in/yaml.v3 is only a transitive
dependency of the teacher repo (pulled in behind chzyer/readline); this
package is what gives it a direct, exercised use in subc.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds subc's project-level settings, all optional.
type Config struct {
	// OutputDir overrides where compiled .s files are written; empty
	// means alongside the source file.
	OutputDir string `yaml:"output_dir"`

	// DarwinMainAlias controls whether the code generator emits the
	// `_main` alias for macOS linkage alongside `main`. Defaults to
	// true; set false to emit only `main` on platforms that don't need
	// the underscore-prefixed alias.
	DarwinMainAlias *bool `yaml:"darwin_main_alias"`

	// Color controls whether CLI diagnostics are colorized. Defaults
	// to true (auto-detected against the terminal at the call site);
	// set false to force plain text, e.g. in CI logs.
	Color *bool `yaml:"color"`
}

// Default returns the configuration subc uses when no subc.yaml is
// present: aliasing enabled, color enabled, output alongside source.
func Default() *Config {
	yes := true
	return &Config{DarwinMainAlias: &yes, Color: &yes}
}

// WantsMainAlias reports whether the _main alias should be emitted.
func (c *Config) WantsMainAlias() bool {
	return c.DarwinMainAlias == nil || *c.DarwinMainAlias
}

// WantsColor reports whether CLI output should be colorized.
func (c *Config) WantsColor() bool {
	return c.Color == nil || *c.Color
}

// Load reads and parses the subc.yaml file at path. A missing file is
// not an error: Load returns Default() unchanged, since the project
// file is entirely optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal over the defaults so an absent field in the file keeps
	// its default rather than zeroing out.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

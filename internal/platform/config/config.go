// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles the rewrite settings and environment parsing.

It leverages 'caarlos0/env' to overlay OS environment variables on top of the
built-in defaults for the DarkMode component.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - Defaults First: An empty environment yields the hardcoded behavior.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/imagefix/internal/platform/constants"
	"github.com/taibuivan/imagefix/internal/platform/validate"
)

// # Configuration Schema

// Config holds all runtime configuration for a single rewrite.
type Config struct {

	// Target artifact, read in full and overwritten in place
	TargetPath string `env:"IMAGEFIX_TARGET_PATH"`

	// Import insertion
	AnchorLine string `env:"IMAGEFIX_ANCHOR_LINE"`
	ImportLine string `env:"IMAGEFIX_IMPORT_LINE"`

	// Tag substitution. MatchPattern must have exactly one capture group.
	MatchPattern string `env:"IMAGEFIX_MATCH_PATTERN"`
	Replacement  string `env:"IMAGEFIX_REPLACEMENT"`

	// DryRun logs the outcome without writing the file.
	DryRun bool `env:"IMAGEFIX_DRY_RUN" envDefault:"false"`
	Debug  bool `env:"DEBUG"            envDefault:"false"`
}

// Default returns the built-in DarkMode configuration.
func Default() *Config {
	return &Config{
		TargetPath:   constants.DefaultTargetPath,
		AnchorLine:   constants.DefaultAnchorLine,
		ImportLine:   constants.DefaultImportLine,
		MatchPattern: constants.DefaultMatchPattern,
		Replacement:  constants.DefaultReplacement,
	}
}

// # Configuration Loading

// Load parses the process environment into a validated [Config].
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom is [Load] against an explicit environment instead of the process one.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {

	// Start from the defaults; variables that are unset leave them untouched.
	cfg := Default()

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every field that cannot drive a rewrite.
func (c *Config) Validate() error {
	v := &validate.Validator{}

	return v.
		Required("target_path", c.TargetPath).
		Required("anchor_line", c.AnchorLine).
		SingleLine("anchor_line", c.AnchorLine).
		Required("import_line", c.ImportLine).
		SingleLine("import_line", c.ImportLine).
		Custom("import_line", c.ImportLine == c.AnchorLine, "Must differ from the anchor line").
		Required("match_pattern", c.MatchPattern).
		Pattern("match_pattern", c.MatchPattern, 1).
		Err()
}

// IsDefault reports whether the rewrite rules are the built-in ones.
func (c *Config) IsDefault() bool {
	d := Default()
	return c.AnchorLine == d.AnchorLine &&
		c.ImportLine == d.ImportLine &&
		c.MatchPattern == d.MatchPattern &&
		c.Replacement == d.Replacement
}

/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the disintegrate CLI.
package config

// Config is the tool configuration.
type Config struct {
	// Catalog is the path to the customizer catalog file.
	Catalog string `yaml:"catalog" json:"catalog"`

	// Records are paths to preference record files (globs supported).
	Records []string `yaml:"records" json:"records"`

	// Values are static field values used when rendering without a
	// live lookup, overridable per invocation with --set.
	Values map[string]string `yaml:"values" json:"values"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Catalog: "",
		Records: nil,
		Values:  nil,
	}
}

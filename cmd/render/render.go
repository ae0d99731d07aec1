/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides the render command for disintegrate.
package render

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fuji97/Disintegrate/config"
	"github.com/fuji97/Disintegrate/customizer"
	"github.com/fuji97/Disintegrate/fs"
	"github.com/fuji97/Disintegrate/resolver"
	"github.com/fuji97/Disintegrate/store"
	"github.com/fuji97/Disintegrate/validator"
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render <record>",
	Short: "Render a preference record's display lines",
	Long: `Render both display lines of a preference record, substituting field
values from config and --set flags.

Examples:
  # Render with field values from the command line
  disintegrate render presence.txt --set game=Chess --set platform=Steam

  # Render with field values from the config file
  disintegrate render presence.txt`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringArray("set", nil, "Field value as name=value (repeatable, overrides config values)")
	Cmd.Flags().Bool("check", false, "Validate the record against the catalog before rendering")
}

func run(cmd *cobra.Command, args []string) error {
	setFlags, _ := cmd.Flags().GetStringArray("set")
	check, _ := cmd.Flags().GetBool("check")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/disintegrate.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")

	record, err := store.Read(filesystem, args[0])
	if err != nil {
		return err
	}

	if check {
		catalogPath := viper.GetString("catalog")
		if catalogPath == "" {
			catalogPath = cfg.Catalog
		}
		if catalogPath == "" {
			return fmt.Errorf("--check requires a catalog: use --catalog or set catalog in the config file")
		}
		ctx, err := customizer.Load(filesystem, catalogPath)
		if err != nil {
			return err
		}
		if err := validator.Validate(record, ctx); err != nil {
			return fmt.Errorf("invalid record %s: %w", args[0], err)
		}
	}

	values, err := mergeValues(cfg.Values, setFlags)
	if err != nil {
		return err
	}

	lineOne, lineTwo, err := resolver.Resolve(record, resolver.MapLookup(values))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", args[0], err)
	}

	fmt.Println(lineOne)
	fmt.Println(lineTwo)
	return nil
}

// mergeValues layers --set name=value pairs over the config values.
func mergeValues(base map[string]string, setFlags []string) (map[string]string, error) {
	values := make(map[string]string, len(base)+len(setFlags))
	for name, value := range base {
		values[name] = value
	}
	for _, pair := range setFlags {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --set value %q: expected name=value", pair)
		}
		values[name] = value
	}
	return values, nil
}

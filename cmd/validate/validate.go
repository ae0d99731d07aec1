/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for disintegrate.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fuji97/Disintegrate/config"
	"github.com/fuji97/Disintegrate/customizer"
	"github.com/fuji97/Disintegrate/fs"
	"github.com/fuji97/Disintegrate/store"
	"github.com/fuji97/Disintegrate/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [records...]",
	Short: "Validate preference record files",
	Long:  `Validate preference record files against the customizer catalog.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/disintegrate.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")

	// Use config records if no args provided
	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandRecords(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config records: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no record files specified and none found in config")
	}

	catalogPath := viper.GetString("catalog")
	if catalogPath == "" {
		catalogPath = cfg.Catalog
	}
	if catalogPath == "" {
		return fmt.Errorf("no catalog specified: use --catalog or set catalog in the config file")
	}

	ctx, err := customizer.Load(filesystem, catalogPath)
	if err != nil {
		return err
	}

	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		record, err := store.Read(filesystem, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		if err := validator.Validate(record, ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid record %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Printf("  icon %s, %d option(s)\n", record.Icon, len(record.EnabledOptions))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All records valid.")
	}
	return nil
}

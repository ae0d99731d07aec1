/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for disintegrate.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fuji97/Disintegrate/cmd/list"
	"github.com/fuji97/Disintegrate/cmd/render"
	"github.com/fuji97/Disintegrate/cmd/validate"
	"github.com/fuji97/Disintegrate/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "disintegrate",
	Short: "Customize and render presence status templates",
	Long: `disintegrate validates and renders presence status templates: two display
lines mixing literal text with {field} placeholders, an icon, and a set of
enabled options, checked against a customizer catalog of valid icons and
fields.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "Path to the customizer catalog file")
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

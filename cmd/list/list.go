/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for disintegrate.
package list

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fuji97/Disintegrate/config"
	"github.com/fuji97/Disintegrate/customizer"
	"github.com/fuji97/Disintegrate/fs"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [icons|fields]",
	Short: "List catalog icons and fields",
	Long:  `List the icons and template fields available in the customizer catalog.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	section := ""
	if len(args) == 1 {
		section = args[0]
	}
	switch section {
	case "", "icons", "fields":
	default:
		return fmt.Errorf("unknown catalog section %q (want icons or fields)", section)
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

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

	if format == "json" {
		return outputJSON(ctx, section)
	}
	return outputTable(ctx, section)
}

func outputTable(ctx *customizer.Context, section string) error {
	caser := cases.Title(language.English)

	first := true
	if section == "" || section == "icons" {
		fmt.Printf("%s\n\n", caser.String("icons"))
		nameW := columnWidth(iconNames(ctx.Icons()))
		for _, icon := range ctx.Icons() {
			fmt.Printf("%s%-*s  %s\n", colorSwatch(icon.Color), nameW, icon.Name, icon.Description)
		}
		first = false
	}
	if section == "" || section == "fields" {
		if !first {
			fmt.Println()
		}
		fmt.Printf("%s\n\n", caser.String("fields"))
		nameW := columnWidth(fieldNames(ctx.Fields()))
		for _, field := range ctx.Fields() {
			fmt.Printf("{%s}%-*s  %s\n", field.Name, nameW-len(field.Name), "", field.Description)
		}
	}
	return nil
}

func outputJSON(ctx *customizer.Context, section string) error {
	type catalogOutput struct {
		Icons  []customizer.Icon  `json:"icons,omitempty"`
		Fields []customizer.Field `json:"fields,omitempty"`
	}

	out := catalogOutput{}
	if section == "" || section == "icons" {
		out.Icons = ctx.Icons()
	}
	if section == "" || section == "fields" {
		out.Fields = ctx.Fields()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func iconNames(icons []customizer.Icon) []string {
	names := make([]string, 0, len(icons))
	for _, icon := range icons {
		names = append(names, icon.Name)
	}
	return names
}

func fieldNames(fields []customizer.Field) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	return names
}

// columnWidth calculates the max width needed for the name column.
func columnWidth(names []string) int {
	w := 4
	for _, name := range names {
		if len(name) > w {
			w = len(name)
		}
	}
	return w
}

// colorSwatch returns a 24-bit ANSI color block for the given accent
// color, or the empty string when there is none or it does not parse.
func colorSwatch(value string) string {
	if value == "" {
		return "    "
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return "    "
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m  ", r, g, b)
}

/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package customizer

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	disfs "github.com/fuji97/Disintegrate/fs"
)

// catalogFile is the on-disk catalog shape.
type catalogFile struct {
	Icons  []Icon  `yaml:"icons" json:"icons"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// UnmarshalYAML handles both string and object forms for Field, so a
// catalog may list fields as bare names:
//
//	fields:
//	  - game
//	  - name: platform
//	    description: where the game is running
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Name = node.Value
		return nil
	}

	type rawField Field
	return node.Decode((*rawField)(f))
}

// UnmarshalJSON handles both string and object forms for Field.
func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Name = s
		return nil
	}

	type rawField Field
	return json.Unmarshal(data, (*rawField)(f))
}

// Load reads a catalog file and returns its Context. The format is
// chosen by extension: .yaml/.yml, or .json/.jsonc (comments and
// trailing commas allowed).
func Load(filesystem disfs.FileSystem, path string) (*Context, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var file catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .yaml, .yml, .json or .jsonc)", ext)
	}

	for i, icon := range file.Icons {
		if icon.Name == "" {
			return nil, fmt.Errorf("catalog %s: icon %d has no name", path, i)
		}
	}
	for i, field := range file.Fields {
		if field.Name == "" {
			return nil, fmt.Errorf("catalog %s: field %d has no name", path, i)
		}
	}

	return New(file.Icons, file.Fields), nil
}

/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package customizer models the catalog of icons and text fields
// available to presence templates.
//
// The catalog is supplied by the host application; this package only
// reads it. Records are validated against a Context by the validator
// package, and the resolver package substitutes live field values at
// render time.
package customizer

// Icon is one selectable presence icon.
type Icon struct {
	// Name is the icon's identifier (e.g., "rocket").
	Name string `yaml:"name" json:"name"`

	// Color is an optional accent color in any CSS color format,
	// shown by the CLI when listing icons.
	Color string `yaml:"color,omitempty" json:"color,omitempty"`

	// Description is optional documentation for the icon.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Field is one text field that templates may reference.
type Field struct {
	// Name is the field's identifier (e.g., "game").
	Name string `yaml:"name" json:"name"`

	// Description is optional documentation for the field.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Context is the customizer catalog against which preference records
// are validated. It is immutable after construction and safe for
// concurrent use.
type Context struct {
	icons      []Icon
	fields     []Field
	iconNames  map[string]struct{}
	fieldNames map[string]struct{}
}

// New builds a Context from catalog entries, preserving their order.
func New(icons []Icon, fields []Field) *Context {
	ctx := &Context{
		icons:      icons,
		fields:     fields,
		iconNames:  make(map[string]struct{}, len(icons)),
		fieldNames: make(map[string]struct{}, len(fields)),
	}
	for _, icon := range icons {
		ctx.iconNames[icon.Name] = struct{}{}
	}
	for _, field := range fields {
		ctx.fieldNames[field.Name] = struct{}{}
	}
	return ctx
}

// HasIcon reports whether name is a valid icon identifier.
// Matching is case-sensitive and exact.
func (c *Context) HasIcon(name string) bool {
	_, ok := c.iconNames[name]
	return ok
}

// HasField reports whether name is a valid field identifier.
// Matching is case-sensitive and exact.
func (c *Context) HasField(name string) bool {
	_, ok := c.fieldNames[name]
	return ok
}

// Icons returns the catalog icons in declaration order.
func (c *Context) Icons() []Icon {
	return c.icons
}

// Fields returns the catalog fields in declaration order.
func (c *Context) Fields() []Field {
	return c.fields
}

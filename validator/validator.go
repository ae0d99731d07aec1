/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks preference records against a customizer catalog.
package validator

import (
	"fmt"
	"strings"

	"github.com/fuji97/Disintegrate/customizer"
	"github.com/fuji97/Disintegrate/preference"
	"github.com/fuji97/Disintegrate/template"
)

// ValidationError describes why a preference record was rejected.
type ValidationError struct {
	// Context names the part of the record that failed ("icon",
	// "line one", "line two").
	Context string
	// Field is the offending icon or field identifier, when applicable.
	Field string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Context != "" {
		sb.WriteString(e.Context)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks r against the customizer catalog, short-circuiting at
// the first failure. It returns nil when r is valid, otherwise a
// *ValidationError. The check is pure; r is never mutated.
//
// Checks, in order: the icon must be a catalog icon; each template line
// must tokenize without error; every field referenced by a line must be
// a catalog field. Field matching is case-sensitive and exact.
func Validate(r preference.Record, ctx *customizer.Context) error {
	if !ctx.HasIcon(r.Icon) {
		return &ValidationError{
			Context:    "icon",
			Field:      r.Icon,
			Message:    fmt.Sprintf("unknown icon %q", r.Icon),
			Suggestion: "choose one of the catalog icons",
		}
	}

	lines := []struct {
		name string
		text string
	}{
		{"line one", r.LineOne},
		{"line two", r.LineTwo},
	}

	for _, line := range lines {
		parts, err := template.Tokenize(line.text)
		if err != nil {
			// Tokenizer messages are user-facing; surface them as-is.
			return &ValidationError{
				Context: line.name,
				Message: err.Error(),
			}
		}

		for _, part := range parts {
			if part.Kind != template.Field {
				continue
			}
			if !ctx.HasField(part.Value) {
				return &ValidationError{
					Context:    line.name,
					Field:      part.Value,
					Message:    fmt.Sprintf("unknown field %q", part.Value),
					Suggestion: "field names are case-sensitive and must match the catalog exactly",
				}
			}
		}
	}

	return nil
}

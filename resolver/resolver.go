/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver substitutes live field values into presence template lines.
package resolver

import (
	"fmt"
	"strings"

	"github.com/fuji97/Disintegrate/preference"
	"github.com/fuji97/Disintegrate/template"
)

// Lookup maps a field name to its current display value. The boolean
// reports whether the field is known; it is supplied by the host at
// render time, typically backed by live application state.
type Lookup func(field string) (string, bool)

// UnknownFieldError indicates a field that the render-time lookup could
// not resolve. For a validated record this means the customizer catalog
// and the live lookup are out of sync, which is a configuration
// inconsistency rather than user input error.
type UnknownFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("no value for field %q", e.Field)
}

// MapLookup returns a Lookup backed by a static map.
func MapLookup(values map[string]string) Lookup {
	return func(field string) (string, bool) {
		v, ok := values[field]
		return v, ok
	}
}

// ResolveLine tokenizes line and concatenates its parts, substituting
// field values from lookup. A lookup miss returns *UnknownFieldError;
// a malformed line returns the tokenizer's *template.SyntaxError.
func ResolveLine(line string, lookup Lookup) (string, error) {
	parts, err := template.Tokenize(line)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, part := range parts {
		switch part.Kind {
		case template.Literal:
			sb.WriteString(part.Value)
		case template.Field:
			value, ok := lookup(part.Value)
			if !ok {
				return "", &UnknownFieldError{Field: part.Value}
			}
			sb.WriteString(value)
		}
	}
	return sb.String(), nil
}

// Resolve renders both template lines of r. The lines are resolved
// independently, but the combined operation fails as a whole if either
// line fails.
func Resolve(r preference.Record, lookup Lookup) (lineOne, lineTwo string, err error) {
	lineOne, err = ResolveLine(r.LineOne, lookup)
	if err != nil {
		return "", "", err
	}
	lineTwo, err = ResolveLine(r.LineTwo, lookup)
	if err != nil {
		return "", "", err
	}
	return lineOne, lineTwo, nil
}

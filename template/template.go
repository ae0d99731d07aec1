/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package template tokenizes presence template lines.
//
// A template line mixes literal text with brace-delimited field
// references, e.g. "Playing {game}". There is no escaping syntax for
// literal brace characters; a template cannot render a literal "{" or
// "}".
package template

import "strings"

// Kind identifies the type of a line part.
type Kind int

const (
	// Literal is verbatim text between field references.
	Literal Kind = iota

	// Field is a named placeholder resolved at render time.
	Field
)

// String returns the string representation of the part kind.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Field:
		return "field"
	default:
		return "unknown"
	}
}

// LinePart is one token of a template line. For Field parts, Value is
// the field name without braces.
type LinePart struct {
	Kind  Kind
	Value string
}

// SyntaxError indicates a malformed template line. The message is
// suitable for direct user display.
type SyntaxError struct {
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return e.Message
}

// Tokenize scans line left to right and returns its ordered parts.
//
// Concatenating the part values, with each Field part replaced by its
// resolved value, reconstructs the rendered line. A Literal part is
// emitted before every field and at end of input, even when empty, so
// the sequence for a valid line always starts and ends with a Literal.
//
// Nested or unbalanced braces return a *SyntaxError.
func Tokenize(line string) ([]LinePart, error) {
	parts := make([]LinePart, 0, 4)
	var buf strings.Builder
	inField := false

	// Braces are ASCII and never occur inside a multi-byte UTF-8
	// sequence, so scanning bytes keeps arbitrary input bytes intact.
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			if inField {
				return nil, &SyntaxError{Message: "unexpected '{' inside field reference"}
			}
			parts = append(parts, LinePart{Kind: Literal, Value: buf.String()})
			buf.Reset()
			inField = true
		case '}':
			if !inField {
				return nil, &SyntaxError{Message: "unexpected '}' without open field reference"}
			}
			parts = append(parts, LinePart{Kind: Field, Value: buf.String()})
			buf.Reset()
			inField = false
		default:
			buf.WriteByte(line[i])
		}
	}

	if inField {
		return nil, &SyntaxError{Message: "unclosed field reference"}
	}

	parts = append(parts, LinePart{Kind: Literal, Value: buf.String()})
	return parts, nil
}

// FieldNames returns the names of all Field parts in line, in order of
// appearance, including duplicates.
func FieldNames(line string) ([]string, error) {
	parts, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, p := range parts {
		if p.Kind == Field {
			names = append(names, p.Value)
		}
	}
	return names, nil
}

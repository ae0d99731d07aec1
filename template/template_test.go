/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package template_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fuji97/Disintegrate/template"
)

func partsEqual(t *testing.T, got, want []template.LinePart) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d parts, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d: expected %s %q, got %s %q",
				i, want[i].Kind, want[i].Value, got[i].Kind, got[i].Value)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []template.LinePart
	}{
		{
			name:  "literal and fields",
			input: "Playing {game} on {platform}",
			want: []template.LinePart{
				{Kind: template.Literal, Value: "Playing "},
				{Kind: template.Field, Value: "game"},
				{Kind: template.Literal, Value: " on "},
				{Kind: template.Field, Value: "platform"},
				{Kind: template.Literal, Value: ""},
			},
		},
		{
			name:  "empty line",
			input: "",
			want:  []template.LinePart{{Kind: template.Literal, Value: ""}},
		},
		{
			name:  "no fields",
			input: "no fields here",
			want:  []template.LinePart{{Kind: template.Literal, Value: "no fields here"}},
		},
		{
			name:  "field only",
			input: "{game}",
			want: []template.LinePart{
				{Kind: template.Literal, Value: ""},
				{Kind: template.Field, Value: "game"},
				{Kind: template.Literal, Value: ""},
			},
		},
		{
			name:  "adjacent fields",
			input: "{game}{platform}",
			want: []template.LinePart{
				{Kind: template.Literal, Value: ""},
				{Kind: template.Field, Value: "game"},
				{Kind: template.Literal, Value: ""},
				{Kind: template.Field, Value: "platform"},
				{Kind: template.Literal, Value: ""},
			},
		},
		{
			name:  "empty field name",
			input: "a{}b",
			want: []template.LinePart{
				{Kind: template.Literal, Value: "a"},
				{Kind: template.Field, Value: ""},
				{Kind: template.Literal, Value: "b"},
			},
		},
		{
			name:  "multibyte literal text",
			input: "héllo {game} ✓",
			want: []template.LinePart{
				{Kind: template.Literal, Value: "héllo "},
				{Kind: template.Field, Value: "game"},
				{Kind: template.Literal, Value: " ✓"},
			},
		},
		{
			// Inputs need not be valid UTF-8; bytes pass through untouched.
			name:  "non-UTF-8 bytes preserved",
			input: "a\xffb {game} \x80",
			want: []template.LinePart{
				{Kind: template.Literal, Value: "a\xffb "},
				{Kind: template.Field, Value: "game"},
				{Kind: template.Literal, Value: " \x80"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := template.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			partsEqual(t, got, tt.want)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"nested open brace", "{a{b}", "unexpected '{'"},
		{"open brace inside field", "{{", "unexpected '{'"},
		{"close brace without field", "a}b", "unexpected '}'"},
		{"close brace at start", "}", "unexpected '}'"},
		{"unclosed field", "{unclosed", "unclosed"},
		{"unclosed field at end", "Playing {game", "unclosed"},
		{"bare open brace", "{", "unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := template.Tokenize(tt.input)
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}

			var syntaxErr *template.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error to contain %q, got: %s", tt.contains, err)
			}
		})
	}
}

// Concatenating part values of a balanced line reconstructs the input
// with the braces removed.
func TestTokenize_Reconstruction(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"{game}",
		"Playing {game} on {platform}",
		"{a}{b}{c}",
		"prefix {x} middle {y} suffix",
		"a{}b",
		"a\xffb",
		"\x80{x}\xfe",
	}

	for _, input := range inputs {
		parts, err := template.Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", input, err)
		}

		var sb strings.Builder
		for _, p := range parts {
			sb.WriteString(p.Value)
		}

		stripped := strings.NewReplacer("{", "", "}", "").Replace(input)
		if sb.String() != stripped {
			t.Errorf("Tokenize(%q): joined values %q, expected %q", input, sb.String(), stripped)
		}
	}
}

func TestTokenize_AlwaysStartsAndEndsWithLiteral(t *testing.T) {
	inputs := []string{"", "{game}", "x{game}", "{game}x", "{a}{b}"}

	for _, input := range inputs {
		parts, err := template.Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", input, err)
		}
		if parts[0].Kind != template.Literal {
			t.Errorf("Tokenize(%q): first part is %s, expected literal", input, parts[0].Kind)
		}
		if parts[len(parts)-1].Kind != template.Literal {
			t.Errorf("Tokenize(%q): last part is %s, expected literal", input, parts[len(parts)-1].Kind)
		}
	}
}

func TestFieldNames(t *testing.T) {
	names, err := template.FieldNames("Playing {game} on {platform} ({game})")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"game", "platform", "game"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d: expected %q, got %q", i, want[i], names[i])
		}
	}

	if _, err := template.FieldNames("{oops"); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestKind_String(t *testing.T) {
	if template.Literal.String() != "literal" {
		t.Errorf("expected literal, got %s", template.Literal)
	}
	if template.Field.String() != "field" {
		t.Errorf("expected field, got %s", template.Field)
	}
	if template.Kind(42).String() != "unknown" {
		t.Errorf("expected unknown, got %s", template.Kind(42))
	}
}

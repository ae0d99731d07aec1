/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fuji97/Disintegrate/preference"
	"github.com/fuji97/Disintegrate/resolver"
	"github.com/fuji97/Disintegrate/template"
)

func TestResolveLine(t *testing.T) {
	lookup := resolver.MapLookup(map[string]string{
		"game":     "Chess",
		"platform": "Steam",
	})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single field", "Playing {game}", "Playing Chess"},
		{"two fields", "Playing {game} on {platform}", "Playing Chess on Steam"},
		{"no fields", "no fields here", "no fields here"},
		{"empty line", "", ""},
		{"field only", "{game}", "Chess"},
		{"adjacent fields", "{game}{platform}", "ChessSteam"},
		{"repeated field", "{game} vs {game}", "Chess vs Chess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ResolveLine(tt.input, lookup)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveLine_UnknownField(t *testing.T) {
	lookup := resolver.MapLookup(nil)

	_, err := resolver.ResolveLine("{missing}", lookup)
	if err == nil {
		t.Fatal("expected error for unresolvable field")
	}

	var unknownErr *resolver.UnknownFieldError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownFieldError, got %T", err)
	}
	if unknownErr.Field != "missing" {
		t.Errorf("expected Field missing, got %q", unknownErr.Field)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("expected error to name the field, got: %s", err)
	}
}

func TestResolveLine_SyntaxError(t *testing.T) {
	_, err := resolver.ResolveLine("{unclosed", resolver.MapLookup(nil))
	if err == nil {
		t.Fatal("expected error for malformed line")
	}

	var syntaxErr *template.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *template.SyntaxError, got %T", err)
	}
}

func TestResolve(t *testing.T) {
	r := preference.Record{
		LineOne: "Playing {game}",
		LineTwo: "on {platform}",
	}
	lookup := resolver.MapLookup(map[string]string{
		"game":     "Chess",
		"platform": "Steam",
	})

	lineOne, lineTwo, err := resolver.Resolve(r, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lineOne != "Playing Chess" {
		t.Errorf("expected Playing Chess, got %q", lineOne)
	}
	if lineTwo != "on Steam" {
		t.Errorf("expected on Steam, got %q", lineTwo)
	}
}

// The combined operation fails as a whole when either line fails.
func TestResolve_LineTwoFailure(t *testing.T) {
	r := preference.Record{
		LineOne: "Playing {game}",
		LineTwo: "{missing}",
	}
	lookup := resolver.MapLookup(map[string]string{"game": "Chess"})

	_, _, err := resolver.Resolve(r, lookup)
	if err == nil {
		t.Fatal("expected error when line two fails")
	}

	var unknownErr *resolver.UnknownFieldError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownFieldError, got %T", err)
	}
	if unknownErr.Field != "missing" {
		t.Errorf("expected Field missing, got %q", unknownErr.Field)
	}

	// Per-line resolution still succeeds for the good line.
	lineOne, err := resolver.ResolveLine(r.LineOne, lookup)
	if err != nil {
		t.Fatalf("unexpected error resolving line one alone: %v", err)
	}
	if lineOne != "Playing Chess" {
		t.Errorf("expected Playing Chess, got %q", lineOne)
	}
}

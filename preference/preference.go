/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package preference holds the user's presence customization state and
// its textual serialization format.
package preference

import (
	"errors"
	"fmt"
	"strings"
)

// Version is the only currently defined serialization format version.
const Version = "1"

// Sentinel errors for serialization operations.
var (
	// ErrUnknownVersion indicates an unrecognized serialization version tag.
	ErrUnknownVersion = errors.New("unknown serialization version")

	// ErrTruncated indicates serialized input with fewer lines than the
	// format defines.
	ErrTruncated = errors.New("truncated preference record")
)

// Record is a user's full presence customization: the chosen icon, two
// template lines, and the set of enabled options.
//
// A Record carries no schema of its own. Validity is defined only
// relative to a customizer catalog, checked on demand by the validator
// package; construction and deserialization never validate.
type Record struct {
	// Icon is the identifier of the chosen icon.
	Icon string

	// LineOne is the raw template for the first display line.
	LineOne string

	// LineTwo is the raw template for the second display line.
	LineTwo string

	// EnabledOptions are the identifiers of enabled boolean options.
	// Order is preserved through serialization round trips.
	EnabledOptions []string
}

// Serialize renders r in the line-oriented version-tagged format:
//
//	<version>
//	<lineOne>
//	<lineTwo>
//	<icon>
//	<comma-separated enabledOptions>
//
// No escaping is performed. Template lines and option identifiers must
// not contain raw newlines, and option identifiers must not contain
// commas; that contract is the caller's to uphold.
func Serialize(r Record) string {
	return strings.Join([]string{
		Version,
		r.LineOne,
		r.LineTwo,
		r.Icon,
		strings.Join(r.EnabledOptions, ","),
	}, "\n")
}

// Deserialize parses the serialized form back into a Record. Carriage
// returns are stripped before splitting, so CRLF input round-trips.
//
// An empty enabled-options line deserializes to a single empty-string
// option rather than an empty set. That is a quirk of the comma split,
// kept for compatibility with existing serialized records.
func Deserialize(s string) (Record, error) {
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")

	if lines[0] != Version {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownVersion, lines[0])
	}
	if len(lines) < 5 {
		return Record{}, fmt.Errorf("%w: expected 5 lines, got %d", ErrTruncated, len(lines))
	}

	return Record{
		LineOne:        lines[1],
		LineTwo:        lines[2],
		Icon:           lines[3],
		EnabledOptions: strings.Split(lines[4], ","),
	}, nil
}

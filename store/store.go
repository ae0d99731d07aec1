/*
Copyright 2026 Fuji97. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package store reads and writes serialized preference records.
//
// The record lifecycle stays with the caller: records are validated on
// demand by the validator package, never on load or save.
package store

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	disfs "github.com/fuji97/Disintegrate/fs"
	"github.com/fuji97/Disintegrate/preference"
)

// ErrNotFound indicates a record file that does not exist.
var ErrNotFound = errors.New("preference record not found")

// Read loads and deserializes the record at path.
func Read(filesystem disfs.FileSystem, path string) (preference.Record, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return preference.Record{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return preference.Record{}, err
	}

	r, err := preference.Deserialize(string(data))
	if err != nil {
		return preference.Record{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return r, nil
}

// Write serializes r to path, creating parent directories as needed.
func Write(filesystem disfs.FileSystem, path string, r preference.Record) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return filesystem.WriteFile(path, []byte(preference.Serialize(r)), 0644)
}

// SPDX-License-Identifier: MIT
// Package: tohu/export
//
// errors.go - sentinel errors for writers.

package export

import "errors"

// ErrUnknownFormat indicates a Save path whose extension has no writer.
var ErrUnknownFormat = errors.New("export: unknown file format")

// ErrNilSource indicates a nil Source or a Source without schema.
var ErrNilSource = errors.New("export: nil source")

// ErrUnknownColumn indicates a rename of a column the schema does not have.
var ErrUnknownColumn = errors.New("export: rename of unknown column")

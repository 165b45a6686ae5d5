// SPDX-License-Identifier: MIT
// Package: tohu/loader
//
// errors.go - sentinel errors for YAML definitions.

package loader

import "errors"

// ErrUnknownKind indicates a field kind with no constructor.
var ErrUnknownKind = errors.New("loader: unknown field kind")

// ErrInvalidDocument indicates a structurally invalid document: a field
// with none or several of kind/ref/loop, a reference to an unknown field or
// loop variable, a malformed ticks value.
var ErrInvalidDocument = errors.New("loader: invalid document")

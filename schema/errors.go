// SPDX-License-Identifier: MIT
// Package: tohu/schema
//
// errors.go - sentinel errors for schemas and records.

package schema

import "errors"

var (
	// ErrNaming indicates a custom-generator class name that does not follow
	// the "<Name>Generator" convention, so no schema name can be derived.
	ErrNaming = errors.New("schema: class name must end in \"Generator\"")

	// ErrDuplicateField indicates a field name registered twice.
	ErrDuplicateField = errors.New("schema: duplicate field name")

	// ErrEmptyField indicates an empty field or schema name.
	ErrEmptyField = errors.New("schema: empty name")

	// ErrUnknownField indicates a field name that is not part of the schema.
	ErrUnknownField = errors.New("schema: unknown field")

	// ErrArity indicates a value count that does not match the field count.
	ErrArity = errors.New("schema: value count does not match field count")
)

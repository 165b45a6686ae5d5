// SPDX-License-Identifier: MIT
// Package: tohu/namespace
//
// errors.go - sentinel errors for namespaces.

package namespace

import "errors"

var (
	// ErrNotFinalized indicates Next on a namespace whose schema has not been
	// built with Finalize yet.
	ErrNotFinalized = errors.New("namespace: schema not finalized")

	// ErrFinalized indicates a registration after Finalize.
	ErrFinalized = errors.New("namespace: already finalized")
)

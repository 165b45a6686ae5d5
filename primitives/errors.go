// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// errors.go - sentinel errors for primitive generators.

package primitives

import "errors"

// ErrInvalidParam indicates a constructor parameter outside its domain
// (low > high, p outside [0,1], odd hex digest length, empty choice list,
// start not before stop, ...).
var ErrInvalidParam = errors.New("primitives: invalid parameter")

// ErrUnknownFakeKind indicates a Fake kind that has no provider.
var ErrUnknownFakeKind = errors.New("primitives: unknown fake kind")

// SPDX-License-Identifier: MIT
// Package: tohu/namespace
//
// options.go - functional options for New.

package namespace

import "log/slog"

// Option configures a Namespace.
type Option func(*Namespace)

// WithLogger sets the logger for registration debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("namespace: WithLogger(nil)")
	}
	return func(ns *Namespace) { ns.logger = l }
}

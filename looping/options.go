// SPDX-License-Identifier: MIT
// Package: tohu/looping
//
// options.go - functional options for runners and variables.

package looping

import "log/slog"

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger of a Runner. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("looping: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// ResetPolicy decides what Variable.Reset does.
type ResetPolicy uint8

const (
	// RewindOnReset makes Reset rewind the variable to its first value,
	// consistent with other generators restarting on reset. A custom
	// generator instance driven by a runner is then reset once, before the
	// loop starts.
	RewindOnReset ResetPolicy = iota

	// KeepOnReset makes Reset leave the current value alone, so an instance
	// can be reset at the start of every cycle; the runner alone moves the
	// variable.
	KeepOnReset
)

// VariableOption configures a Variable.
type VariableOption func(*Variable)

// WithResetPolicy selects the Reset behaviour of a Variable.
func WithResetPolicy(p ResetPolicy) VariableOption {
	if p > KeepOnReset {
		panic("looping: WithResetPolicy: unknown policy")
	}
	return func(v *Variable) { v.policy = p }
}

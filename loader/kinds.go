// SPDX-License-Identifier: MIT
// Package: tohu/loader
//
// kinds.go - field kind constructors.

package loader

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tohu/core"
	"github.com/katalvlaran/tohu/derived"
	"github.com/katalvlaran/tohu/primitives"
)

// kindFunc builds a generator from a field's params node and the
// generators its args name.
type kindFunc func(params *yaml.Node, args []core.Generator) (core.Generator, error)

var kinds = map[string]kindFunc{
	"constant": func(p *yaml.Node, _ []core.Generator) (core.Generator, error) {
		var q struct {
			Value any `yaml:"value"`
		}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		return primitives.NewConstant(q.Value), nil
	},
	"integer": func(p *yaml.Node, _ []core.Generator) (core.Generator, error) {
		var q struct {
			Low  int64 `yaml:"low"`
			High int64 `yaml:"high"`
		}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		return primitives.NewInteger(q.Low, q.High)
	},
	"float": func(p *yaml.Node, _ []core.Generator) (core.Generator, error) {
		var q struct {
			Low  float64 `yaml:"low"`
			High float64 `yaml:"high"`
		}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		return primitives.NewFloat(q.Low, q.High)
	},
	"boolean": func(p *yaml.Node, _ []core.Generator) (core.Generator, error) {
		q := struct {
			P float64 `yaml:"p"`
		}{P: 0.5}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		return primitives.NewBoolean(q.P)
	},
	"choice": func(p *yaml.Node, _ []core.Generator) (core.Generator, error) {
		var q struct {
			Values []any `yaml:"values"`
		}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		return primitives.NewChoice(q.Values...)
	},
	"hashdigest": func(p *yaml.Node, _ []core.Generator) (core.Generator, error) {
		var q struct {
			Length    int  `yaml:"length"`
			AsBytes   bool `yaml:"as_bytes"`
			Lowercase bool `yaml:"lowercase"`
		}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		return primitives.NewHashDigest(q.Length, q.AsBytes, q.Lowercase)
	},
	"timestamp": func(p *yaml.Node, _ []core.Generator) (core.Generator, error) {
		var q struct {
			Start string `yaml:"start"`
			Stop  string `yaml:"stop"`
			Date  string `yaml:"date"`
		}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		if q.Date != "" {
			if q.Start != "" || q.Stop != "" {
				return nil, fmt.Errorf("timestamp: date excludes start/stop: %w", primitives.ErrInvalidParam)
			}
			return primitives.NewTimestampOnDate(q.Date)
		}
		start, err := time.Parse(time.RFC3339, q.Start)
		if err != nil {
			return nil, fmt.Errorf("timestamp: start: %w", err)
		}
		stop, err := time.Parse(time.RFC3339, q.Stop)
		if err != nil {
			return nil, fmt.Errorf("timestamp: stop: %w", err)
		}
		return primitives.NewTimestamp(start, stop)
	},
	"fake": func(p *yaml.Node, _ []core.Generator) (core.Generator, error) {
		var q struct {
			Kind string `yaml:"kind"`
		}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		return primitives.NewFake(q.Kind)
	},
	"format": func(p *yaml.Node, args []core.Generator) (core.Generator, error) {
		var q struct {
			Format string `yaml:"format"`
		}
		if err := decode(p, &q); err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("format: no args: %w", ErrInvalidDocument)
		}
		return derived.Apply(func(vals []any, _ map[string]any) (any, error) {
			return fmt.Sprintf(q.Format, vals...), nil
		}, args...)
	},
}

// Kinds returns the supported field kinds, sorted.
func Kinds() []string {
	return slices.Sorted(maps.Keys(kinds))
}

// decode fills out from params; an absent params block leaves out as is.
func decode(params *yaml.Node, out any) error {
	if params == nil || params.Kind == 0 {
		return nil
	}
	if err := params.Decode(out); err != nil {
		return fmt.Errorf("params: %w", err)
	}

	return nil
}

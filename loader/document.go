// SPDX-License-Identifier: MIT
// Package: tohu/loader
//
// document.go - the YAML shape of a definition.

package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tohu/looping"
)

// Document is a decoded definition.
type Document struct {
	Name   string      `yaml:"name"`
	Seed   *int64      `yaml:"seed,omitempty"`
	Ticks  *TicksValue `yaml:"ticks,omitempty"`
	Loops  []LoopLevel `yaml:"loops,omitempty"`
	Fields []FieldDoc  `yaml:"fields"`
}

// LoopLevel declares the paired variables of one loop level.
type LoopLevel struct {
	Level int       `yaml:"level"`
	Vars  []LoopVar `yaml:"vars"`
}

// LoopVar is a named list of loop values.
type LoopVar struct {
	Name   string `yaml:"name"`
	Values []any  `yaml:"values"`
}

// FieldDoc declares one field. Exactly one of Kind, Ref and Loop is set.
type FieldDoc struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind,omitempty"`
	Params yaml.Node `yaml:"params,omitempty"`
	Args   []string  `yaml:"args,omitempty"`
	Ref    string    `yaml:"ref,omitempty"`
	Loop   string    `yaml:"loop,omitempty"`
}

// TicksValue is a tick specifier written as an integer (same count for
// every cycle) or a list of integers (count per cycle).
type TicksValue struct {
	Spec looping.TickSpec
}

// UnmarshalYAML implements yaml.Unmarshaler for TicksValue.
func (t *TicksValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("ticks: %w", err)
		}
		t.Spec = looping.Fixed(n)
		return nil
	case yaml.SequenceNode:
		var list []int
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("ticks: %w", err)
		}
		t.Spec = looping.Sequence(list)
		return nil
	default:
		return fmt.Errorf("ticks: line %d: want an integer or a list: %w", node.Line, ErrInvalidDocument)
	}
}

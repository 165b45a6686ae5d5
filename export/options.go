// SPDX-License-Identifier: MIT
// Package: tohu/export
//
// options.go - writer options and their defaults.

package export

import (
	"iter"
	"maps"

	"github.com/katalvlaran/tohu/schema"
)

// Source is what writers read from.
type Source interface {
	Schema() *schema.Schema
	All() iter.Seq2[schema.Record, error]
}

// Default presentation values.
const (
	DefaultSeparator = ','
	// maxSheetName is the sheet name limit of the XLSX format.
	maxSheetName = 31
)

// Option customises a writer.
type Option func(*config)

type config struct {
	separator    rune
	header       bool
	headerPrefix string
	renames      map[string]string
	sheet        string
}

func newConfig(opts ...Option) config {
	cfg := config{separator: DefaultSeparator, header: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeparator sets the CSV field separator. Panics on '"', '\r', '\n'
// and the zero rune.
func WithSeparator(sep rune) Option {
	switch sep {
	case 0, '"', '\r', '\n':
		panic("export: WithSeparator: invalid separator")
	}
	return func(c *config) { c.separator = sep }
}

// WithHeader turns the header row on or off (on by default).
func WithHeader(on bool) Option {
	return func(c *config) { c.header = on }
}

// WithHeaderPrefix is written before the first header cell, e.g. "#" for
// tools that treat the header as a comment.
func WithHeaderPrefix(prefix string) Option {
	return func(c *config) { c.headerPrefix = prefix }
}

// WithRenames renames columns in the header: field name → column name.
// Later calls add to earlier ones.
func WithRenames(renames map[string]string) Option {
	return func(c *config) {
		if c.renames == nil {
			c.renames = make(map[string]string, len(renames))
		}
		maps.Copy(c.renames, renames)
	}
}

// WithSheetName sets the XLSX sheet name. The default is DefaultBaseName
// of the schema. Panics on an empty name or one over 31 characters.
func WithSheetName(name string) Option {
	if name == "" || len([]rune(name)) > maxSheetName {
		panic("export: WithSheetName: name must have 1 to 31 characters")
	}
	return func(c *config) { c.sheet = name }
}

// columns returns the header cells of s under cfg.
func (cfg config) columns(s *schema.Schema) ([]string, error) {
	fields := s.Fields()
	for from := range cfg.renames {
		if _, ok := s.Index(from); !ok {
			return nil, ErrUnknownColumn
		}
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f
		if to, ok := cfg.renames[f]; ok {
			out[i] = to
		}
	}
	if len(out) > 0 {
		out[0] = cfg.headerPrefix + out[0]
	}

	return out, nil
}

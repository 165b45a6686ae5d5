// SPDX-License-Identifier: MIT
// Package: tohu/export
//
// csv.go - CSV writer.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes src as CSV: an optional header row, then one row per
// record in schema order. Options: WithSeparator, WithHeader,
// WithHeaderPrefix, WithRenames.
func WriteCSV(w io.Writer, src Source, opts ...Option) error {
	if src == nil || src.Schema() == nil {
		return fmt.Errorf("WriteCSV: %w", ErrNilSource)
	}
	cfg := newConfig(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = cfg.separator

	if cfg.header {
		header, err := cfg.columns(src.Schema())
		if err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
		if err = cw.Write(header); err != nil {
			return fmt.Errorf("WriteCSV: header: %w", err)
		}
	}
	row := make([]string, src.Schema().Len())
	n := 0
	for rec, err := range src.All() {
		if err != nil {
			return fmt.Errorf("WriteCSV: record %d: %w", n, err)
		}
		for i := range row {
			row[i] = FormatValue(rec.At(i))
		}
		if err = cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: record %d: %w", n, err)
		}
		n++
	}
	cw.Flush()

	return cw.Error()
}

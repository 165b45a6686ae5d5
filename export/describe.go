// SPDX-License-Identifier: MIT
// Package: tohu/export
//
// describe.go - per-column summaries of generated records.

package export

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
)

// Summary describes one column. The statistics are set only for numeric
// columns (all non-nil values integers or floats).
type Summary struct {
	Field   string
	Count   int
	Numeric bool
	Mean    float64
	Std     float64 // sample standard deviation, 0 below two values
	Min     float64
	Median  float64
	Max     float64
}

// String renders "field: count=N mean=... std=... min=... median=... max=...".
func (s Summary) String() string {
	if !s.Numeric {
		return fmt.Sprintf("%s: count=%d", s.Field, s.Count)
	}
	return fmt.Sprintf("%s: count=%d mean=%.4g std=%.4g min=%.4g median=%.4g max=%.4g",
		s.Field, s.Count, s.Mean, s.Std, s.Min, s.Median, s.Max)
}

// Describe summarises every column of src, in schema order.
func Describe(src Source) ([]Summary, error) {
	if src == nil || src.Schema() == nil {
		return nil, fmt.Errorf("Describe: %w", ErrNilSource)
	}
	fields := src.Schema().Fields()
	data := make([][]float64, len(fields))
	numeric := make([]bool, len(fields))
	counts := make([]int, len(fields))
	for i := range numeric {
		numeric[i] = true
	}

	for rec, err := range src.All() {
		if err != nil {
			return nil, fmt.Errorf("Describe: %w", err)
		}
		for i := range fields {
			v := rec.At(i)
			if v == nil {
				continue
			}
			counts[i]++
			if !numeric[i] {
				continue
			}
			x, ok := toFloat(v)
			if !ok {
				numeric[i], data[i] = false, nil
				continue
			}
			data[i] = append(data[i], x)
		}
	}

	out := make([]Summary, len(fields))
	for i, f := range fields {
		out[i] = Summary{Field: f, Count: counts[i]}
		if !numeric[i] || len(data[i]) == 0 {
			continue
		}
		s, err := summarise(data[i])
		if err != nil {
			return nil, fmt.Errorf("Describe(%s): %w", f, err)
		}
		s.Field, s.Count = f, counts[i]
		out[i] = s
	}

	return out, nil
}

// FormatSummaries renders one Summary per line.
func FormatSummaries(summaries []Summary) string {
	var sb strings.Builder
	for _, s := range summaries {
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

func summarise(data stats.Float64Data) (Summary, error) {
	s := Summary{Numeric: true}
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if len(data) > 1 {
		if s.Std, err = stats.StandardDeviationSample(data); err != nil {
			return s, err
		}
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}

	return s, nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

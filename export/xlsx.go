// SPDX-License-Identifier: MIT
// Package: tohu/export
//
// xlsx.go - XLSX workbook writer.

package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// WriteXLSX writes src as a one-sheet workbook: the header in row 1, then
// one row per record. Numbers, booleans and times keep their cell types;
// other values are written as text. Options: WithHeader, WithHeaderPrefix,
// WithRenames, WithSheetName.
func WriteXLSX(w io.Writer, src Source, opts ...Option) (err error) {
	if src == nil || src.Schema() == nil {
		return fmt.Errorf("WriteXLSX: %w", ErrNilSource)
	}
	cfg := newConfig(opts...)
	sheet := cfg.sheet
	if sheet == "" {
		sheet = truncate(DefaultBaseName(src.Schema()), maxSheetName)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteXLSX: %w", cerr)
		}
	}()
	if err = f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	rowIdx := 1
	if cfg.header {
		header, err := cfg.columns(src.Schema())
		if err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
		cells := make([]any, len(header))
		for i, h := range header {
			cells[i] = h
		}
		if err = setRow(f, sheet, rowIdx, cells); err != nil {
			return fmt.Errorf("WriteXLSX: header: %w", err)
		}
		rowIdx++
	}
	for rec, err := range src.All() {
		if err != nil {
			return fmt.Errorf("WriteXLSX: row %d: %w", rowIdx, err)
		}
		cells := make([]any, rec.Len())
		for i := range cells {
			cells[i] = cellValue(rec.At(i))
		}
		if err = setRow(f, sheet, rowIdx, cells); err != nil {
			return fmt.Errorf("WriteXLSX: row %d: %w", rowIdx, err)
		}
		rowIdx++
	}
	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	return f.SetSheetRow(sheet, cell, &cells)
}

// cellValue keeps the values excelize stores natively and renders the rest.
func cellValue(v any) any {
	switch v.(type) {
	case nil, bool, string, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	default:
		return FormatValue(v)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

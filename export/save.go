// SPDX-License-Identifier: MIT
// Package: tohu/export
//
// save.go - writing to a file chosen by extension.

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Save writes src to path in the format its extension names: ".csv",
// ".tsv" (tab separated), ".xlsx" or ".msgpack"/".mp". Returns
// ErrUnknownFormat for other extensions, before creating the file.
func Save(path string, src Source, opts ...Option) (err error) {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = func(w io.Writer) error { return WriteCSV(w, src, opts...) }
	case ".tsv":
		write = func(w io.Writer) error {
			return WriteCSV(w, src, append([]Option{WithSeparator('\t')}, opts...)...)
		}
	case ".xlsx":
		write = func(w io.Writer) error { return WriteXLSX(w, src, opts...) }
	case ".msgpack", ".mp":
		write = func(w io.Writer) error { return WriteMsgpack(w, src) }
	default:
		return fmt.Errorf("Save(%q): %w", path, ErrUnknownFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Save: %w", cerr)
		}
	}()

	return write(f)
}

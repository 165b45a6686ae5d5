// SPDX-License-Identifier: MIT
// Package: tohu/export
//
// msgpack.go - msgpack stream writer.

package export

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteMsgpack writes src as a stream of msgpack maps, one per record,
// keys in schema order. No header or framing is written; decode until EOF.
func WriteMsgpack(w io.Writer, src Source) error {
	if src == nil || src.Schema() == nil {
		return fmt.Errorf("WriteMsgpack: %w", ErrNilSource)
	}
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	n := 0
	for rec, err := range src.All() {
		if err != nil {
			return fmt.Errorf("WriteMsgpack: record %d: %w", n, err)
		}
		if err = enc.Encode(rec); err != nil {
			return fmt.Errorf("WriteMsgpack: record %d: %w", n, err)
		}
		n++
	}

	return nil
}

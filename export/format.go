// SPDX-License-Identifier: MIT
// Package: tohu/export
//
// format.go - text rendering of field values.

package export

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/go-openapi/inflect"

	"github.com/katalvlaran/tohu/schema"
)

// FormatValue renders v as a CSV cell: times as RFC 3339, byte slices as
// lowercase hex, floats in the shortest exact form, nil as "".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	case []byte:
		return hex.EncodeToString(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// DefaultBaseName derives a file or sheet base name from the record type:
// "Person" gives "people", "QuuxItem" gives "quux_items".
func DefaultBaseName(s *schema.Schema) string {
	return inflect.Pluralize(inflect.Underscore(s.Name()))
}

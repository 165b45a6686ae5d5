// SPDX-License-Identifier: MIT
// Package: tohu/schema
//
// naming.go - schema names derived from custom-generator class names.

package schema

import (
	"fmt"
	"strings"
)

// GeneratorSuffix is the suffix every custom-generator class name carries.
const GeneratorSuffix = "Generator"

// DeriveName strips GeneratorSuffix from className:
//
//	DeriveName("FooGenerator") // "Foo", nil
//	DeriveName("Quux")         // "", ErrNaming
//
// The bare name "Generator" is rejected as well, it leaves nothing to name
// the records by.
func DeriveName(className string) (string, error) {
	name, ok := strings.CutSuffix(className, GeneratorSuffix)
	if !ok || name == "" {
		return "", fmt.Errorf("DeriveName(%q): %w", className, ErrNaming)
	}

	return name, nil
}

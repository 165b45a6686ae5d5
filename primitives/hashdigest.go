// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// hashdigest.go - random hex strings or byte slices shaped like hash digests.

package primitives

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/katalvlaran/tohu/core"
)

// HashDigest produces random digests. With hex output, length counts hex
// characters and must be even; with byte output it counts bytes.
type HashDigest struct {
	core.Base
	length    int
	asBytes   bool
	lowercase bool
	rng       *rand.Rand
}

// NewHashDigest validates its parameters and returns a digest generator.
// Hex output is uppercase unless lowercase is set. lowercase has no effect
// together with asBytes; that combination is logged as a warning and
// otherwise ignored.
func NewHashDigest(length int, asBytes, lowercase bool, opts ...Option) (*HashDigest, error) {
	if length <= 0 {
		return nil, fmt.Errorf("NewHashDigest(%d): length must be positive: %w", length, ErrInvalidParam)
	}
	if !asBytes && length%2 != 0 {
		return nil, fmt.Errorf("NewHashDigest(%d): hex digest length must be even: %w", length, ErrInvalidParam)
	}
	cfg := newConfig(opts...)
	if asBytes && lowercase {
		cfg.logger.Warn("Ignoring lowercase because it has no effect when as_bytes",
			slog.Int("length", length))
		lowercase = false
	}

	return &HashDigest{
		Base:      core.NewBase("HashDigest"),
		length:    length,
		asBytes:   asBytes,
		lowercase: lowercase,
		rng:       newRand(),
	}, nil
}

// Next returns a string (hex output) or a []byte (byte output).
func (g *HashDigest) Next() (any, error) {
	n := g.length
	if !g.asBytes {
		n /= 2
	}
	buf := make([]byte, n)
	g.rng.Read(buf)
	if g.asBytes {
		return buf, nil
	}
	s := hex.EncodeToString(buf)
	if !g.lowercase {
		s = strings.ToUpper(s)
	}

	return s, nil
}

// Reset reseeds the generator and its clones.
func (g *HashDigest) Reset(seed int64) error {
	g.rng.Seed(seed)
	return g.ResetClones(seed)
}

// Spawn returns a HashDigest with the same shape and a fresh RNG.
func (g *HashDigest) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return &HashDigest{
		Base:      g.Derive(),
		length:    g.length,
		asBytes:   g.asBytes,
		lowercase: g.lowercase,
		rng:       newRand(),
	}, nil
}

// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// timestamp.go - second-resolution timestamps in [start, stop).

package primitives

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/tohu/core"
)

// dateLayout is the accepted layout of TimestampOnDate.
const dateLayout = "2006-01-02"

// Timestamp draws whole-second instants uniformly from [start, stop).
type Timestamp struct {
	core.Base
	start time.Time
	span  int64 // seconds
	rng   *rand.Rand
}

// NewTimestamp returns a generator over [start, stop). Returns
// ErrInvalidParam unless start is at least one second before stop.
func NewTimestamp(start, stop time.Time) (*Timestamp, error) {
	span := int64(stop.Sub(start) / time.Second)
	if span <= 0 {
		return nil, fmt.Errorf("NewTimestamp(%s, %s): start must be earlier than stop: %w",
			start.Format(time.RFC3339), stop.Format(time.RFC3339), ErrInvalidParam)
	}

	return &Timestamp{Base: core.NewBase("Timestamp"), start: start, span: span, rng: newRand()}, nil
}

// NewTimestampOnDate covers one calendar day, date given as YYYY-MM-DD in UTC.
func NewTimestampOnDate(date string) (*Timestamp, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("NewTimestampOnDate(%q): %v: %w", date, err, ErrInvalidParam)
	}

	return NewTimestamp(d, d.AddDate(0, 0, 1))
}

// Next returns a time.Time.
func (g *Timestamp) Next() (any, error) {
	return g.start.Add(time.Duration(g.rng.Int63n(g.span)) * time.Second), nil
}

// Reset reseeds the generator and its clones.
func (g *Timestamp) Reset(seed int64) error {
	g.rng.Seed(seed)
	return g.ResetClones(seed)
}

// Spawn returns a Timestamp over the same interval with a fresh RNG.
func (g *Timestamp) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return &Timestamp{Base: g.Derive(), start: g.start, span: g.span, rng: newRand()}, nil
}

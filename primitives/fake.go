// SPDX-License-Identifier: MIT
// Package: tohu/primitives
//
// fake.go - fake personal and company data backed by gofakeit.

package primitives

import (
	"fmt"
	"sort"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/katalvlaran/tohu/core"
)

// zeroSeedSubstitute replaces seed 0, which gofakeit treats as "pick a
// random seed".
const zeroSeedSubstitute uint64 = 0x9e3779b97f4a7c15

// fakeProviders maps a Fake kind to the faker method producing it.
var fakeProviders = map[string]func(*gofakeit.Faker) string{
	"name":       (*gofakeit.Faker).Name,
	"first_name": (*gofakeit.Faker).FirstName,
	"last_name":  (*gofakeit.Faker).LastName,
	"email":      (*gofakeit.Faker).Email,
	"city":       (*gofakeit.Faker).City,
	"country":    (*gofakeit.Faker).Country,
	"company":    (*gofakeit.Faker).Company,
	"phone":      (*gofakeit.Faker).Phone,
	"username":   (*gofakeit.Faker).Username,
}

// FakeKinds lists the supported Fake kinds in sorted order.
func FakeKinds() []string {
	out := make([]string, 0, len(fakeProviders))
	for k := range fakeProviders {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Fake produces strings of one kind ("name", "email", ...).
type Fake struct {
	core.Base
	kind    string
	provide func(*gofakeit.Faker) string
	faker   *gofakeit.Faker
}

// NewFake returns a generator for kind. Returns ErrUnknownFakeKind for
// kinds not listed by FakeKinds.
func NewFake(kind string) (*Fake, error) {
	p, ok := fakeProviders[kind]
	if !ok {
		return nil, fmt.Errorf("NewFake(%q): %w", kind, ErrUnknownFakeKind)
	}

	return &Fake{Base: core.NewBase("Fake"), kind: kind, provide: p, faker: newFaker(0)}, nil
}

func newFaker(seed int64) *gofakeit.Faker {
	s := uint64(seed)
	if s == 0 {
		s = zeroSeedSubstitute
	}

	return gofakeit.New(s)
}

// FakeKind returns the fake kind, e.g. "email".
func (g *Fake) FakeKind() string { return g.kind }

// Next returns the next fake string.
func (g *Fake) Next() (any, error) { return g.provide(g.faker), nil }

// Reset replaces the faker with one seeded from seed and resets the clones.
func (g *Fake) Reset(seed int64) error {
	g.faker = newFaker(seed)
	return g.ResetClones(seed)
}

// Spawn returns a Fake of the same kind with a fresh faker.
func (g *Fake) Spawn(*core.SpawnMapping) (core.Generator, error) {
	return &Fake{Base: g.Derive(), kind: g.kind, provide: g.provide, faker: newFaker(0)}, nil
}

// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tohu/builder"
	"github.com/katalvlaran/tohu/derived"
	"github.com/katalvlaran/tohu/looping"
	"github.com/katalvlaran/tohu/primitives"
)

// ExampleDefinition_New sweeps a size over two shapes and emits two items
// per combination.
func ExampleDefinition_New() {
	shape := looping.MustVariable("shape", "circle", "square")
	size := looping.MustVariable("size", 1, 2)
	label := derived.MustApply(func(args []any, _ map[string]any) (any, error) {
		return fmt.Sprintf("%s-%d", strings.ToUpper(args[0].(string)[:1]), args[1]), nil
	}, shape, size)

	def := builder.Define("TileGenerator").
		Field("shape", shape).
		Field("size", size).
		Field("label", label).
		Field("kind", primitives.NewConstant("tile")).
		Foreach(size).
		Foreach(shape).
		MustBuild()

	inst, err := def.New()
	if err != nil {
		fmt.Println(err)
		return
	}
	list, err := inst.GenerateLooped(builder.WithTicks(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(list)
	for rec, err := range list.All() {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(rec)
	}
	// Output:
	// <List containing 8 items>
	// Tile(shape=circle, size=1, label=C-1, kind=tile)
	// Tile(shape=circle, size=1, label=C-1, kind=tile)
	// Tile(shape=circle, size=2, label=C-2, kind=tile)
	// Tile(shape=circle, size=2, label=C-2, kind=tile)
	// Tile(shape=square, size=1, label=S-1, kind=tile)
	// Tile(shape=square, size=1, label=S-1, kind=tile)
	// Tile(shape=square, size=2, label=S-2, kind=tile)
	// Tile(shape=square, size=2, label=S-2, kind=tile)
}

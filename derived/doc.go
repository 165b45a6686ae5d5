// Package derived provides generators computed from other generators.
//
// Apply wraps a pure function together with positional and keyword
// argument generators:
//
//	first, _ := primitives.NewFake("first_name")
//	last, _ := primitives.NewFake("last_name")
//	full := derived.MustApply(func(args []any, _ map[string]any) (any, error) {
//		return fmt.Sprint(args[0], " ", args[1]), nil
//	}, first, last)
//
// Apply draws from clones of its arguments. When the same generator feeds
// several derived generators each one advances its own clone, and all of
// them are reset together whenever the shared generator is reset.
package derived

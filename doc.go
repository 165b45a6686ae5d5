// Package tohu produces deterministic, reproducible streams of synthetic
// records from declaratively composed field generators.
//
// What is in the box?
//
//	• Primitive generators: constants, integers, floats, booleans, choices,
//	  hash digests, timestamps and fake personal data
//	• Derived generators: Apply a function over other generators
//	• Custom generators: a named record type assembled from fields, every
//	  instance an isolated generator graph (SpawnGraph cloning)
//	• Loop variables: nested parameter sweeps, one batch per combination
//	• Export: CSV, XLSX, msgpack and numeric column summaries
//
// Why?
//
//   - Same seed, same definition, same records. Always.
//   - Shared sub-generators stay correlated, separate instances never
//     share RNG state.
//   - Sweeps and batches are explicit objects, not ambient state.
//
// Packages:
//
//	core/        Generator contract, SeedDeriver, SpawnMapping, lineage
//	primitives/  leaf generators
//	derived/     Apply over other generators
//	schema/      record types and records
//	depgraph/    dependency graph of a generator graph
//	namespace/   assembled per-instance graph with class-separated reset
//	looping/     loop variables, the nested-loop runner, tick specifiers
//	items/       lazy, restartable record lists
//	builder/     Define / Build / New, looped and parallel generation
//	loader/      definitions from YAML
//	export/      CSV, XLSX, msgpack writers and summaries
//
// Quick example:
//
//	x := looping.MustVariable("x", 1, 2, 3)
//	def := builder.Define("PointGenerator").
//		Field("x", x).
//		Field("y", yGen).
//		Foreach(x).
//		MustBuild()
//	inst, _ := def.New()
//	list, _ := inst.GenerateLooped(builder.WithSeed(7), builder.WithTicks(10))
//	_ = export.WriteCSV(os.Stdout, list)
//
//	go get github.com/katalvlaran/tohu
package tohu

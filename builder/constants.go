// SPDX-License-Identifier: MIT
// Package: tohu/builder
//
// constants.go - method tokens for error context and deterministic defaults.

package builder

// Method name constants, used to prefix errors with the operation name.
const (
	// MethodField is the canonical name for Definition.Field.
	MethodField = "Field"
	// MethodForeach is the canonical name for Definition.Foreach/ForeachAt.
	MethodForeach = "Foreach"
	// MethodBuild is the canonical name for Definition.Build.
	MethodBuild = "Build"
	// MethodNew is the canonical name for Definition.New.
	MethodNew = "New"
	// MethodGenerate is the canonical name for Instance.Generate.
	MethodGenerate = "Generate"
	// MethodGenerateLooped is the canonical name for Instance.GenerateLooped.
	MethodGenerateLooped = "GenerateLooped"
	// MethodGenerateGrouped is the canonical name for Instance.GenerateGrouped.
	MethodGenerateGrouped = "GenerateGrouped"
	// MethodGenerateParallel is the canonical name for Instance.GenerateParallel.
	MethodGenerateParallel = "GenerateParallel"
)

// DefaultSeed is the seed of looped generation when WithSeed is not given.
const DefaultSeed int64 = 0

// DefaultWorkers bounds the goroutines of GenerateParallel.
const DefaultWorkers = 4

// FirstLoopLevel is the level the first Foreach call declares (innermost).
const FirstLoopLevel = 1

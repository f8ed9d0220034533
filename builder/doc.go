// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// Package builder assembles road networks for demos, tests and benchmarks.
//
// One orchestrator, BuildGraph(bopts, cons...), creates an empty core.Graph,
// resolves the functional options into an immutable config, and runs each
// Constructor in order. Two constructors are provided:
//
//   - DemoRoads: the fixed five-intersection network used throughout the
//     examples; every road exists in both directions and is labeled car.
//   - RandomNetwork: a random network over intersections 1..n; per road the
//     source is drawn once and the target redrawn up to MaxRetries times to
//     avoid self-loops and duplicates.
//
// Determinism: the same seed, options and constructor order produce the same
// network. Randomness lives here only; the routing engines are deterministic.
package builder

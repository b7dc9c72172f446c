// Package pebble is a deterministic 2D rigid-circle physics core for
// interactive sandboxes.
//
// Bodies fall under gravity, collide elastically with each other and with the
// playfield bounds, and can be spawned and dragged by an external shell. The
// package owns only the simulation: fixed-timestep integration, a spatial-hash
// broadphase, and impulse-based collision resolution. Rendering, UI, and input
// sourcing are the caller's concern — see demos/sandbox for an [Ebitengine]
// shell.
//
// # Quick start
//
//	cfg := pebble.DefaultConfig()
//	world := pebble.NewWorld(cfg.World)
//	stepper := pebble.NewStepper(world, cfg.World)
//
//	h, _ := world.Spawn(320, 60, 12, 0, 0, pebble.Color{R: 1, G: 0.5, B: 0.2, A: 1})
//
//	// Drive from any frame loop; elapsed is real time in seconds.
//	stepper.Tick(elapsed)
//
//	// Read state for drawing.
//	snaps := world.Snapshot(nil)
//
// A [World] is a self-contained simulation context: multiple independent
// worlds can coexist, and tests drive them synchronously without waiting on
// real time.
//
// # Stepping model
//
// [Stepper.Tick] accumulates real frame time and runs zero or more fixed
// substeps per call, carrying the remainder so the physics rate is decoupled
// from the display rate. Each substep integrates all bodies (semi-implicit
// Euler), rebuilds the spatial hash, resolves all same-cell circle pairs, and
// clamps bodies to the playfield.
//
// [Ebitengine]: https://ebitengine.org
package pebble

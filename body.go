package pebble

import "math"

// Body is one circular rigid object. Positions are in pixels, velocities in
// pixels per second. InvMass is derived from the radius at spawn time
// (1 / area), so larger bodies are heavier and respond less to impulses.
//
// Bodies live in a dense arena owned by a [World]; external code refers to
// them through a [Handle] and reads them through [BodySnapshot].
type Body struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	InvMass float64
	Color   Color
}

// Handle identifies a body within a World. The zero Handle is invalid.
//
// A Handle is a dense arena index plus a generation counter: clearing the
// world bumps the generation of every slot, so handles from before the clear
// are detected as stale rather than silently resolving to a new body.
type Handle struct {
	idx int32
	gen uint32
}

// Valid reports whether h was ever issued by a World. It does not check
// staleness; handle-taking World methods do that against the live arena.
func (h Handle) Valid() bool {
	return h.gen != 0
}

// BodySnapshot is a read-only view of one body, for rendering and hit
// feedback. Velocity is deliberately omitted: shells draw positions and
// drive velocity only through [World.SetBodyKinematic].
type BodySnapshot struct {
	Handle Handle
	X, Y   float64
	Radius float64
	Color  Color
}

// invMassFor computes the inverse mass for a circle of the given radius.
// Mass is the circle's area, so invMass is always finite and positive for
// any valid radius.
func invMassFor(radius float64) float64 {
	return 1.0 / (math.Pi * radius * radius)
}

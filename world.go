package pebble

import "fmt"

// World is one self-contained simulation context: the body arena plus the
// global parameters (gravity, restitution, playfield, broadphase tuning).
// All methods must be called from a single goroutine; a World has no internal
// locking because the whole simulation is cooperatively scheduled by one
// frame loop.
type World struct {
	width  float64
	height float64

	gravity     float64
	restitution float64

	bodies []Body
	gens   []uint32 // per-slot generation, len(gens) >= len(bodies)

	hash         spatialHash
	cellMin      float64
	cellMax      float64
	tuneInterval int
	stepCount    int
}

// NewWorld creates a World from a validated configuration. Call
// [WorldConfig.Validate] first when the config comes from user input;
// NewWorld itself assumes the parameters are sane.
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		width:        cfg.Width,
		height:       cfg.Height,
		gravity:      cfg.Gravity,
		restitution:  cfg.Restitution,
		cellMin:      cfg.CellSizeMin,
		cellMax:      cfg.CellSizeMax,
		tuneInterval: cfg.TuneInterval,
	}
	w.hash.configure(cfg.Width, cfg.Height, clamp((cfg.CellSizeMin+cfg.CellSizeMax)/2, cfg.CellSizeMin, cfg.CellSizeMax))
	return w
}

// Size returns the playfield dimensions in pixels.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Gravity returns the current downward acceleration in px/s².
func (w *World) Gravity() float64 {
	return w.gravity
}

// SetGravity updates the downward acceleration. Any finite value is accepted;
// range policy belongs to the caller (a UI slider, a config file).
func (w *World) SetGravity(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("pebble: set gravity: %g is not finite", v)
	}
	w.gravity = v
	return nil
}

// Restitution returns the current bounce coefficient, shared by all bodies
// and all walls.
func (w *World) Restitution() float64 {
	return w.restitution
}

// SetRestitution updates the bounce coefficient. Any finite value is
// accepted; values outside [0,1] add or remove energy on every collision,
// which is occasionally what a sandbox wants.
func (w *World) SetRestitution(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("pebble: set restitution: %g is not finite", v)
	}
	w.restitution = v
	return nil
}

// Spawn adds a body and returns its handle. The radius must be positive and
// finite; position and velocity must be finite. Overlap with existing bodies
// is allowed — the resolver separates them over the following steps.
func (w *World) Spawn(x, y, radius, vx, vy float64, c Color) (Handle, error) {
	if !isFinite(radius) || radius <= 0 {
		return Handle{}, fmt.Errorf("pebble: spawn: radius %g: must be positive and finite", radius)
	}
	if !isFinite(x) || !isFinite(y) {
		return Handle{}, fmt.Errorf("pebble: spawn: position (%g, %g): must be finite", x, y)
	}
	if !isFinite(vx) || !isFinite(vy) {
		return Handle{}, fmt.Errorf("pebble: spawn: velocity (%g, %g): must be finite", vx, vy)
	}

	i := len(w.bodies)
	if i >= len(w.gens) {
		w.gens = append(w.gens, 1)
	}
	w.bodies = append(w.bodies, Body{
		X: x, Y: y,
		VX: vx, VY: vy,
		Radius:  radius,
		InvMass: invMassFor(radius),
		Color:   c,
	})
	return Handle{idx: int32(i), gen: w.gens[i]}, nil
}

// ClearAll removes every body. Handles issued before the clear become stale
// and are rejected by handle-taking methods from then on.
func (w *World) ClearAll() {
	for i := range w.bodies {
		w.gens[i]++
	}
	w.bodies = w.bodies[:0]
}

// lookup resolves a handle against the live arena. Returns nil for the zero
// handle, for out-of-range indices, and for stale generations.
func (w *World) lookup(h Handle) *Body {
	if h.gen == 0 || int(h.idx) >= len(w.bodies) || w.gens[h.idx] != h.gen {
		return nil
	}
	return &w.bodies[h.idx]
}

// HitTest returns the topmost body whose circle contains (x, y). Topmost
// means last spawned: on overlap the most recent body wins, matching draw
// order in a shell that draws the arena in order.
func (w *World) HitTest(x, y float64) (Handle, bool) {
	for i := len(w.bodies) - 1; i >= 0; i-- {
		b := &w.bodies[i]
		dx := x - b.X
		dy := y - b.Y
		if dx*dx+dy*dy <= b.Radius*b.Radius {
			return Handle{idx: int32(i), gen: w.gens[i]}, true
		}
	}
	return Handle{}, false
}

// SetBodyKinematic overrides a body's position and velocity directly,
// bypassing integration. Shells call this every frame while dragging, with
// the velocity implied by the pointer's displacement rate, so a released
// body keeps its thrown momentum.
func (w *World) SetBodyKinematic(h Handle, x, y, vx, vy float64) error {
	if !isFinite(x) || !isFinite(y) || !isFinite(vx) || !isFinite(vy) {
		return fmt.Errorf("pebble: set kinematic: non-finite state (%g, %g, %g, %g)", x, y, vx, vy)
	}
	b := w.lookup(h)
	if b == nil {
		return fmt.Errorf("pebble: set kinematic: stale or invalid handle")
	}
	b.X, b.Y = x, y
	b.VX, b.VY = vx, vy
	return nil
}

// Snapshot appends a read-only view of every body to dst and returns the
// extended slice. Pass the previous frame's slice (truncated to zero length)
// to avoid per-frame allocation.
func (w *World) Snapshot(dst []BodySnapshot) []BodySnapshot {
	for i := range w.bodies {
		b := &w.bodies[i]
		dst = append(dst, BodySnapshot{
			Handle: Handle{idx: int32(i), gen: w.gens[i]},
			X:      b.X,
			Y:      b.Y,
			Radius: b.Radius,
			Color:  b.Color,
		})
	}
	return dst
}

// step advances the simulation by one fixed substep: integrate, retune and
// rebuild the broadphase, resolve same-cell pairs, clamp to the playfield.
// External code never observes a partially stepped world.
func (w *World) step(dt float64) {
	w.integrate(dt)

	if w.stepCount%w.tuneInterval == 0 {
		w.hash.configure(w.width, w.height, tunedCellSize(w.bodies, w.cellMin, w.cellMax, w.hash.cellSize))
	}
	w.hash.rebuild(w.bodies)

	w.resolveCollisions()
	w.applyBounds()
	w.stepCount++
}

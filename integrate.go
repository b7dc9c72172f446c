package pebble

import "math"

// integrate advances every body by one substep of semi-implicit Euler:
// gravity into velocity first, then velocity into position. Runs before
// collision detection each substep.
func (w *World) integrate(dt float64) {
	for i := range w.bodies {
		b := &w.bodies[i]
		b.VY += w.gravity * dt
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}
}

// applyBounds clamps every body inside the playfield. A circle crossing a
// wall is moved back to tangency and its perpendicular velocity component is
// reflected, scaled by the world restitution — the same energy loss as a
// body-body bounce. The axes are handled independently, so a corner hit
// reflects both components in the same step.
func (w *World) applyBounds() {
	e := w.restitution
	for i := range w.bodies {
		b := &w.bodies[i]
		r := b.Radius

		if b.X-r < 0 {
			b.X = r
			b.VX = math.Abs(b.VX) * e
		} else if b.X+r > w.width {
			b.X = w.width - r
			b.VX = -math.Abs(b.VX) * e
		}

		if b.Y-r < 0 {
			b.Y = r
			b.VY = math.Abs(b.VY) * e
		} else if b.Y+r > w.height {
			b.Y = w.height - r
			b.VY = -math.Abs(b.VY) * e
		}
	}
}

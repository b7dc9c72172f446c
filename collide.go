package pebble

import "math"

// minSeparation guards the collision normal against a zero-length
// displacement. Exactly coincident centers get a nominal +X normal instead
// of a division by zero.
const minSeparation = 1e-6

// resolveCollisions runs the narrowphase over every broadphase cell,
// resolving each in-cell pair in index order. A pair jointly straddling
// several cells is tested once per shared cell; the second resolution of an
// already-separated pair is a no-op, so no visited-pair set is kept.
//
// With three or more mutually overlapping bodies in a cell, resolution is
// pairwise and sequential — a dense cluster settles over a few steps rather
// than within one.
func (w *World) resolveCollisions() {
	for _, cell := range w.hash.cells {
		for i := 0; i < len(cell); i++ {
			for j := i + 1; j < len(cell); j++ {
				resolvePair(&w.bodies[cell[i]], &w.bodies[cell[j]], w.restitution)
			}
		}
	}
}

// resolvePair separates two overlapping circles and applies the collision
// impulse. Non-overlapping pairs are left untouched.
func resolvePair(a, b *Body, restitution float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	distSq := dx*dx + dy*dy
	minDist := a.Radius + b.Radius
	if distSq >= minDist*minDist {
		return
	}

	dist := math.Sqrt(distSq)
	var nx, ny float64
	if dist < minSeparation {
		dist = minSeparation
		nx, ny = 1, 0
	} else {
		nx = dx / dist
		ny = dy / dist
	}

	// Positional de-penetration, weighted by inverse mass so the heavier
	// body moves less. Instantaneous — not scaled by the timestep.
	invSum := a.InvMass + b.InvMass
	corr := (minDist - dist) / invSum
	a.X -= nx * corr * a.InvMass
	a.Y -= ny * corr * a.InvMass
	b.X += nx * corr * b.InvMass
	b.Y += ny * corr * b.InvMass

	// Relative velocity along the normal; positive means the pair is already
	// separating and an impulse would add energy.
	vn := (b.VX-a.VX)*nx + (b.VY-a.VY)*ny
	if vn > 0 {
		return
	}

	j := -(1 + restitution) * vn / invSum
	a.VX -= j * nx * a.InvMass
	a.VY -= j * ny * a.InvMass
	b.VX += j * nx * b.InvMass
	b.VY += j * ny * b.InvMass
}

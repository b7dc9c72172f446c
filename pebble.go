package pebble

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// The core stores it per body and hands it back unchanged in snapshots; only
// shells interpret it.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default body color.
var ColorWhite = Color{1, 1, 1, 1}

// NRGBA converts the color to 8-bit non-premultiplied RGBA for drawing.
// Components outside [0, 1] are clamped.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1) * 255),
		G: uint8(clamp(c.G, 0, 1) * 255),
		B: uint8(clamp(c.B, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

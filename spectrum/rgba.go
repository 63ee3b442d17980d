package spectrum

import (
	"image/color"
	"math"
)

// RGBA is a Capability producing opaque image/color.RGBA values. Lerp clamps
// amt to [0, 1], blends each channel linearly, and rounds to the nearest
// level.
type RGBA struct{}

// New returns the opaque color (r, g, b).
func (RGBA) New(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Lerp blends a toward b by amt.
func (RGBA) Lerp(a, b color.RGBA, amt float64) color.RGBA {
	amt = clamp01(amt)
	return color.RGBA{
		R: lerpChannel(a.R, b.R, amt),
		G: lerpChannel(a.G, b.G, amt),
		B: lerpChannel(a.B, b.B, amt),
		A: lerpChannel(a.A, b.A, amt),
	}
}

func lerpChannel(a, b uint8, amt float64) uint8 {
	v := float64(a) + float64((float64(b)-float64(a))*amt)
	return uint8(math.Round(v))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

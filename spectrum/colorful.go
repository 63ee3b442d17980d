package spectrum

import colorful "github.com/lucasb-eyer/go-colorful"

// ColorfulRGB is a Capability producing go-colorful colors blended in sRGB.
type ColorfulRGB struct{}

// New returns (r, g, b) scaled into [0, 1].
func (ColorfulRGB) New(r, g, b uint8) colorful.Color {
	return fromRGB(r, g, b)
}

// Lerp blends a toward b in RGB space.
func (ColorfulRGB) Lerp(a, b colorful.Color, amt float64) colorful.Color {
	return a.BlendRgb(b, clamp01(amt))
}

// ColorfulLab is like ColorfulRGB but blends in CIE L*a*b*, which keeps the
// perceived brightness steadier between distant stops. Results may fall
// outside the RGB gamut; call Clamped before converting.
type ColorfulLab struct{}

// New returns (r, g, b) scaled into [0, 1].
func (ColorfulLab) New(r, g, b uint8) colorful.Color {
	return fromRGB(r, g, b)
}

// Lerp blends a toward b in L*a*b* space.
func (ColorfulLab) Lerp(a, b colorful.Color, amt float64) colorful.Color {
	return a.BlendLab(b, clamp01(amt))
}

func fromRGB(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

package main

import (
	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/move"
	"github.com/phanxgames/move/internal/sketch"
	"github.com/phanxgames/move/spectrum"
)

// renderFrame draws one demo frame on a black canvas.
func renderFrame(sk *sketch.Sketch, pointer move.Vec2, w, h, frame int) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	for _, d := range sk.Frame(pointer, float64(w), float64(h), frame) {
		dc.SetColor(d.Color)
		dc.DrawCircle(d.Pos.X, d.Pos.Y, d.Radius/2)
		dc.Fill()
	}
	return dc
}

// renderSpectrum draws the palette twice: blended in RGB on the top half and
// in L*a*b* on the bottom half.
func renderSpectrum(palette string, w, h int) (*gg.Context, error) {
	rgb, err := spectrum.New[colorful.Color](spectrum.ColorfulRGB{})
	if err != nil {
		return nil, err
	}
	lab, err := spectrum.New[colorful.Color](spectrum.ColorfulLab{})
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	half := float64(h) / 2
	end := float64(w - 1)
	for x := 0; x < w; x++ {
		top, err := rgb.Map(palette, 0, end, float64(x))
		if err != nil {
			return nil, err
		}
		bottom, err := lab.Map(palette, 0, end, float64(x))
		if err != nil {
			return nil, err
		}
		dc.SetColor(top)
		dc.DrawRectangle(float64(x), 0, 1, half)
		dc.Fill()
		dc.SetColor(bottom.Clamped())
		dc.DrawRectangle(float64(x), half, 1, half)
		dc.Fill()
	}
	return dc, nil
}

// renderEasing plots every curve of the table in its own cell of a grid.
func renderEasing(pace *move.EasingTable, cell int) *gg.Context {
	const (
		cols    = 6
		margin  = 16.0
		samples = 64
	)
	names := pace.Names()
	rows := (len(names) + cols - 1) / cols

	dc := gg.NewContext(cols*cell, rows*cell)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	size := float64(cell) - 2*margin
	for i, name := range names {
		ox := float64(i%cols*cell) + margin
		oy := float64(i/cols*cell) + margin

		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawRectangle(ox, oy, size, size)
		dc.Stroke()

		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(name, ox+size/2, oy+size+margin/2, 0.5, 0.5)

		fn, _ := pace.Func(name)
		dc.SetRGB(0.85, 0.1, 0.3)
		dc.SetLineWidth(2)
		for s := 0; s <= samples; s++ {
			t := float64(s) / samples
			x := ox + t*size
			y := oy + size - fn(t)*size
			if s == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
		dc.SetLineWidth(1)
	}
	return dc
}

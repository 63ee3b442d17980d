package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/move"
	"github.com/phanxgames/move/internal/sketch"
)

// game implements ebiten.Game around a Sketch. All motion is recomputed from
// the frame counter and cursor on every Draw; Update only advances the frame
// counter and the sketch's mode-switch animation.
type game struct {
	sketch *sketch.Sketch
	frame  int
	w, h   int
	debug  bool
	stats  frameStats
}

func (g *game) Update() error {
	g.frame++
	g.sketch.Update(float32(1 / float64(ebiten.TPS())))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.sketch.SetMode(sketch.ModeOrbit)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.sketch.SetMode(sketch.ModeFlock)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.debug = !g.debug
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	mx, my := ebiten.CursorPosition()
	dots := g.sketch.Frame(move.Vec2{X: float64(mx), Y: float64(my)}, float64(g.w), float64(g.h), g.frame)

	if g.debug {
		g.stats.computeTime += time.Since(t0)
		t0 = time.Now()
	}

	for _, d := range dots {
		vector.DrawFilledCircle(screen, float32(d.Pos.X), float32(d.Pos.Y), float32(d.Radius/2), d.Color, true)
	}

	if g.debug {
		g.stats.drawTime += time.Since(t0)
		g.stats.frames++
		g.stats.dots += len(dots)
		g.debugLog()
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

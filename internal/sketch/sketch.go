// Package sketch computes the dots of the orbit and flock demos for one frame.
// It knows nothing about windows or image formats; the programs under cmd/
// draw what Frame returns.
package sketch

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/phanxgames/move"
	"github.com/phanxgames/move/spectrum"
)

// Dot is one filled circle to draw.
type Dot struct {
	Pos    move.Vec2
	Radius float64
	Color  color.NRGBA
}

// GrowDuration is how long, in seconds, dots take to grow back to full size
// after a mode switch.
const GrowDuration = 0.5

// Sketch holds the palette and random source shared by every frame.
type Sketch struct {
	Params Params

	rainbow *spectrum.Interpolator[color.RGBA]
	stops   []color.RGBA
	rng     *rand.Rand

	// grow scales every dot radius; it is 1 except while growTween runs.
	grow      float64
	growEase  move.EaseFunc
	growTween *move.TweenGroup
}

// New validates p and prepares its palette. rng drives the orbit color pick
// and follower jitter; a nil rng uses a fixed seed.
func New(p Params, rng *rand.Rand) (*Sketch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rainbow, err := spectrum.New[color.RGBA](spectrum.RGBA{})
	if err != nil {
		return nil, err
	}
	stops, err := rainbow.Colors(p.Palette)
	if err != nil {
		return nil, fmt.Errorf("sketch palette: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	growEase, _ := move.NewEasingTable().Func(move.CubicOut)
	return &Sketch{
		Params:   p,
		rainbow:  rainbow,
		stops:    stops,
		rng:      rng,
		grow:     1,
		growEase: growEase,
	}, nil
}

// SetMode switches the active demo. Switching to a different mode shrinks
// the dots to nothing and grows them back over GrowDuration as Update is
// called.
func (s *Sketch) SetMode(m Mode) {
	if m == s.Params.Mode {
		return
	}
	s.Params.Mode = m
	s.grow = 0
	s.growTween = move.TweenValue(&s.grow, 1, GrowDuration, s.growEase)
}

// Update advances running animations by dt seconds.
func (s *Sketch) Update(dt float32) {
	if s.growTween == nil {
		return
	}
	s.growTween.Update(dt)
	if s.growTween.Done {
		s.growTween = nil
	}
}

// Frame returns the dots for one frame on a w x h canvas. pointer is the
// cursor position and frame is the frame counter driving the rotation.
func (s *Sketch) Frame(pointer move.Vec2, w, h float64, frame int) []Dot {
	center := move.Vec2{X: w / 2, Y: h / 2}
	angle := float64(frame) / s.Params.AngleDivisor

	if s.Params.Mode == ModeFlock {
		return s.flock(pointer, center, angle, w, h)
	}
	return s.orbit(pointer, center, angle, w, h)
}

func (s *Sketch) orbit(pointer, center move.Vec2, angle, w, h float64) []Dot {
	pos := move.Orbit(pointer.X, pointer.Y, center.X, center.Y, angle)
	c := s.stops[s.rng.IntN(len(s.stops))]
	return []Dot{s.dot(pos, c, w, h)}
}

func (s *Sketch) flock(pointer, center move.Vec2, angle, w, h float64) []Dot {
	n := s.Params.FlockNumber
	spacing := s.Params.FlockSpacing
	birds := move.FlockChain(pointer, center, angle, spacing, n, func(k int) float64 {
		progress := 0.5
		if s.Params.Jitter {
			progress = s.rng.Float64()
		}
		return move.Between(-spacing, spacing, progress*float64(k)/float64(n-1))
	})

	dots := make([]Dot, len(birds))
	for k, pos := range birds {
		// Palette was resolved in New.
		c, _ := s.rainbow.Map(s.Params.Palette, 0, float64(n-1), float64(k))
		dots[k] = s.dot(pos, c, w, h)
	}
	// The leader is drawn unclamped.
	dots[0].Pos = birds[0]
	return dots
}

func (s *Sketch) dot(pos move.Vec2, c color.RGBA, w, h float64) Dot {
	off := s.Params.BoundingOffset
	return Dot{
		Pos: move.Vec2{
			X: move.Constrain(pos.X, off, w-off),
			Y: move.Constrain(pos.Y, off, h-off),
		},
		Radius: s.Params.CircleRadius * s.grow,
		Color:  color.NRGBA{R: c.R, G: c.G, B: c.B, A: s.Params.Alpha},
	}
}

package move

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween adapts the curve to gween's (t, begin, change, duration) signature so
// it can drive a gween.Tween or gween.Sequence directly.
func (f EaseFunc) Tween() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d == 0 {
			return b + c
		}
		return b + c*float32(f(float64(t/d)))
	}
}

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenValue or TweenVec and call Update(dt) each frame. The group writes the
// current values into the target fields on every update.
//
// There is no global animation manager; callers call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Done becomes true once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds every tween to its start and clears Done. Target fields are
// not touched until the next Update.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenValue creates a TweenGroup that animates *v to the target value over
// the specified duration using the easing curve.
func TweenValue(v *float64, to float64, duration float32, fn EaseFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*v), float32(to), duration, fn.Tween())
	g.fields[0] = v
	return g
}

// TweenVec creates a TweenGroup that animates p.X and p.Y to the target point
// over the specified duration using the easing curve.
func TweenVec(p *Vec2, to Vec2, duration float32, fn EaseFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	tw := fn.Tween()
	g.tweens[0] = gween.New(float32(p.X), float32(to.X), duration, tw)
	g.tweens[1] = gween.New(float32(p.Y), float32(to.Y), duration, tw)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	return g
}

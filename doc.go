// Package move is a small motion-math toolkit for per-frame 2D animation.
//
// Every function is pure: call it once per frame with the frame clock,
// pointer position, or whatever scalar drives the motion, and draw the
// result with the renderer of your choice. Nothing is cached between calls.
//
// # Interpolation
//
// [Between] is a plain linear interpolation and [BackAndForth] goes from
// start to end and back again over one unit of progress:
//
//	x := move.Between(0, 100, 0.5)        // 50
//	y := move.BackAndForth(0, 100, 0.75)  // 50, on the way back
//
// # Easing
//
// [NewEasingTable] builds the immutable table of named curves (quadIn through
// sexticInOut). Look a curve up once and keep the [EaseFunc]:
//
//	pace := move.NewEasingTable()
//	out, _ := pace.Func(move.CubicOut)
//	x := move.Between(0, 100, out(t))
//
// Any [EaseFunc] can drive a [gween] tween through [EaseFunc.Tween], and
// [TweenValue] / [TweenVec] wrap that for the common cases.
//
// # Orbit and flock
//
// [Orbit] rotates a point about a pivot. [Flock] does the same and then steps
// the result by a fixed distance on both axes; feeding each result back in
// as the next input builds a trailing chain, which [FlockChain] does for you:
//
//	birds := move.FlockChain(pointer, center, float64(frame)/100, 1, 20, nil)
//
// # Aliases
//
// Short names (btw, baf, orb, rainbow, ...) resolve to a single canonical
// implementation through [Resolve], [ScalarOp], and [PointOp].
//
// Spectrum interpolation lives in the spectrum subpackage, whose
// Interpolator.Op looks up mapToRoygbiv and its aliases the same way.
//
// [gween]: https://github.com/tanema/gween
package move

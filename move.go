package move

// Vec2 is a 2D point or offset. Values produced by Orbit and Flock are
// plain copies with no lifetime beyond the caller's use.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Lerp returns the value at progress t through the range.
func (r Range) Lerp(t float64) float64 {
	return Between(r.Min, r.Max, t)
}

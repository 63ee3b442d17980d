package move

import "math"

// Orbit rotates (x, y) about the pivot (cx, cy) by angle radians and returns
// the result in the original coordinate frame. Positive angles rotate from
// +X toward +Y.
//
//	Translate(-cx, -cy) -> Rotate(angle) -> Translate(cx, cy)
//
// A point that sits on the pivot stays where it is for every angle.
func Orbit(x, y, cx, cy, angle float64) Vec2 {
	rx, ry := rotateAbout(x, y, cx, cy, angle)
	return Vec2{rx, ry}
}

// Flock rotates (x, y) about (cx, cy) exactly like Orbit, then adds distance
// to both coordinates. The step is applied identically to X and Y whatever
// the angle; it is not projected along the rotated heading.
//
//	Flock(0, 0, 0, 0, math.Pi/2, 100) // {100, 100}
//
// Flock with a zero distance is Orbit. See FlockChain for the usual way of
// feeding each result back in as the next follower's input.
func Flock(x, y, cx, cy, angle, distance float64) Vec2 {
	rx, ry := rotateAbout(x, y, cx, cy, angle)
	return Vec2{rx + distance, ry + distance}
}

// rotateAbout applies the rotation matrix
//
//	| cos  -sin |
//	| sin   cos |
//
// to (x-cx, y-cy) and translates the result back by the pivot. Products are
// rounded individually so the result does not depend on FMA support.
func rotateAbout(x, y, cx, cy, angle float64) (float64, float64) {
	s := math.Sin(angle)
	c := math.Cos(angle)
	x -= cx
	y -= cy
	xnew := float64(x*c) - float64(y*s)
	ynew := float64(x*s) + float64(y*c)
	return xnew + cx, ynew + cy
}

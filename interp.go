package move

// Between linearly interpolates from start to end. Progress outside [0, 1]
// extrapolates along the same line. The product is rounded before the add, so
// no platform fuses it.
//
//	Between(0, 100, 0.5)  // 50
//	Between(0, 100, 0.25) // 25
func Between(start, end, progress float64) float64 {
	return start + float64((end-start)*progress)
}

// BackAndForth travels from start to end during the first half of progress
// and back to start during the second half. Progress is doubled and used
// as-is: values outside [0, 1] keep extrapolating the matching half rather
// than wrapping.
func BackAndForth(start, end, progress float64) float64 {
	diff := end - start
	t := progress * 2
	if t < 1 {
		return start + float64(diff*t)
	}
	return end - float64(diff*(t-1))
}

// Constrain clamps v to [lo, hi].
func Constrain(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

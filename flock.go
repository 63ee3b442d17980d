package move

// FlockChain builds n follower positions that trail lead around pivot.
//
// Follower 0 is Flock(lead, pivot, angle, spacing). Follower k (k >= 1) is
// Flock applied to follower k-1 with a distance of spacing*k + drift(k), so
// each bird steps a little further out than the one it follows. drift may be
// nil for a rigid chain; pass a jittered function for the scattered look.
//
// The chain is recomputed from scratch on every call. Returns nil when n <= 0.
func FlockChain(lead, pivot Vec2, angle, spacing float64, n int, drift func(k int) float64) []Vec2 {
	if n <= 0 {
		return nil
	}
	flock := make([]Vec2, n)
	flock[0] = Flock(lead.X, lead.Y, pivot.X, pivot.Y, angle, spacing)
	for k := 1; k < n; k++ {
		leader := flock[k-1]
		distance := float64(spacing * float64(k))
		if drift != nil {
			distance += drift(k)
		}
		flock[k] = Flock(leader.X, leader.Y, pivot.X, pivot.Y, angle, distance)
	}
	return flock
}

package arrangement

import "math"

const Tolerance = 1e-6

// Intersections of near-parallel or shared lines get recomputed with small
// numerical variation, so equality is tolerance based. Too tight a tolerance
// fragments one crossing into several points and corrupts adjacency; too
// loose a tolerance merges distinct nearby crossings.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// StrictlyGreater is the tolerance-aware a > b: values within Tolerance of
// each other count as equal, not greater.
func StrictlyGreater(a, b float64) bool {
	return a > b && !Equal(a, b)
}

func (p *Point) ApproxEqual(q *Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// LexBefore orders points by X, breaking near-ties by Y. Along any single
// line this comparison reproduces the geometric order of the points, since
// only vertical lines have (tolerance-)equal X values.
func (p *Point) LexBefore(q *Point) bool {
	if Equal(p.X, q.X) {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

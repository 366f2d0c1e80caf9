package arrangement

import "math"

// buildAngleTable precomputes, for every ordered pair of points (i, j), the
// direction of j as seen from i against the positive x axis, normalized to
// [0, 2π). The table drives both the initial outgoing direction from a start
// node and the rotation-system walk. The diagonal is unused.
func buildAngleTable(points []*Point) [][]float64 {
	angles := make([][]float64, len(points))
	for i, p := range points {
		angles[i] = make([]float64, len(points))
		for j, q := range points {
			if i == j {
				continue
			}
			a := math.Atan2(q.Y-p.Y, q.X-p.X)
			if a < 0 {
				a += 2 * math.Pi
			}
			angles[i][j] = a
		}
	}
	return angles
}

package arrangement

// SignedArea is the shoelace area of the vertex loop: positive for
// counterclockwise winding, negative for clockwise.
func SignedArea(points []*Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func IsCW(points []*Point) bool {
	return SignedArea(points) < 0
}

func IsCCW(points []*Point) bool {
	return SignedArea(points) > 0
}

// Reverse returns the vertex loop with opposite winding.
func Reverse(points []*Point) []*Point {
	reversed := make([]*Point, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		reversed = append(reversed, points[i])
	}
	return reversed
}

// ContainsPoint is the even-odd (crossing count) point-in-polygon rule.
// Points on the boundary are not guaranteed either answer.
func ContainsPoint(points []*Point, p *Point) bool {
	crossings := 0
	for i, a := range points {
		b := points[CircularIndex(i+1, len(points))]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// X coordinate where the edge crosses the horizontal through p.
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if x > p.X {
			crossings++
		}
	}
	return crossings%2 == 1
}

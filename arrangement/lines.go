package arrangement

// Line is the boundary Normal·x = Offset of some halfplane.
type Line struct {
	Normal Point
	Offset float64
}

// Boundary returns the halfplane's boundary line.
func (hp Halfplane) Boundary() Line {
	return Line{Normal: hp.Normal, Offset: hp.Offset}
}

// The four sides of the unit square, as the halfplanes x ≥ 0, x ≤ 1, y ≥ 0
// and y ≤ 1 containing it.
var borders = [4]Halfplane{
	{Normal: Point{X: -1, Y: 0}, Offset: 0},
	{Normal: Point{X: 1, Y: 0}, Offset: 1},
	{Normal: Point{X: 0, Y: -1}, Offset: 0},
	{Normal: Point{X: 0, Y: 1}, Offset: 1},
}

// collectLines flattens every obstacle's halfplane boundaries plus the four
// square borders into one registry. Registry order, and therefore point id
// assignment downstream, is fixed by obstacle order.
func collectLines(obstacles []*Obstacle) []Line {
	var lines []Line
	for _, obstacle := range obstacles {
		for _, hp := range obstacle.Constraints {
			lines = append(lines, hp.Boundary())
		}
	}
	for _, hp := range borders {
		lines = append(lines, hp.Boundary())
	}
	return lines
}

// Intersect solves the 2×2 system formed by two boundary lines by Cramer's
// rule. Parallel and coincident pairs have a vanishing determinant and yield
// no point.
func (l Line) Intersect(m Line) (*Point, bool) {
	det := l.Normal.X*m.Normal.Y - l.Normal.Y*m.Normal.X
	if Equal(det, 0) {
		return nil, false
	}
	return &Point{
		X: (l.Offset*m.Normal.Y - m.Offset*l.Normal.Y) / det,
		Y: (l.Normal.X*m.Offset - m.Normal.X*l.Offset) / det,
	}, true
}

// inUnitSquare accepts points inside the square and, within Tolerance,
// points on its border.
func inUnitSquare(p *Point) bool {
	return p.X >= -Tolerance && p.X <= 1+Tolerance &&
		p.Y >= -Tolerance && p.Y <= 1+Tolerance
}

package arrangement

import "gonum.org/v1/gonum/graph/simple"

// Arrangement is the planar subdivision of the unit square induced by a set
// of convex obstacles: the original obstacles, the deduplicated intersection
// points of all halfplane boundary lines (obstacle edges plus the four
// square borders), the adjacency graph over point ids, and the free-space
// faces as clockwise point-id cycles.
type Arrangement struct {
	Obstacles []*Obstacle
	Points    []*Point
	Graph     *simple.UndirectedGraph
	Faces     []Face
}

// Construct runs the whole pipeline: line registry, pairwise intersection,
// colinear ordering, neighbor derivation, graph construction, angular face
// tracing and face filtering. Obstacles must be convex, pairwise
// non-overlapping and inside the unit square; that precondition is the
// caller's (behavior under overlap is unspecified). An obstacle without at
// least three halfplanes panics with a ConstructError; the package-level
// wrapper in the root package converts that to an error.
//
// The computation is pure and deterministic: no state is shared across
// calls, and the same input always yields identical points, adjacency and
// faces.
func Construct(obstacles []*Obstacle) *Arrangement {
	for i, obstacle := range obstacles {
		if len(obstacle.Constraints) < 3 {
			fatalf("obstacle %d has %d halfplanes; a convex polygon needs at least 3", i, len(obstacle.Constraints))
		}
	}

	lines := collectLines(obstacles)
	index, onLine := findIntersections(lines)
	neighbors := buildNeighbors(index.points, onLine)
	g := buildGraph(len(index.points), neighbors)

	tr := &tracer{
		points: index.points,
		graph:  g,
		angles: buildAngleTable(index.points),
	}
	faces := filterFaces(tr.traceAll(), obstacles, index)

	return &Arrangement{
		Obstacles: obstacles,
		Points:    index.points,
		Graph:     g,
		Faces:     faces,
	}
}

// FindPoint locates a coordinate in the arrangement's point list by
// approximate equality.
func (a *Arrangement) FindPoint(p *Point) (int, bool) {
	for id, q := range a.Points {
		if q.ApproxEqual(p) {
			return id, true
		}
	}
	return 0, false
}

// FacePoints resolves a face's ids to coordinates, in face order.
func (a *Arrangement) FacePoints(f Face) []*Point {
	points := make([]*Point, len(f))
	for i, id := range f {
		points[i] = a.Points[id]
	}
	return points
}

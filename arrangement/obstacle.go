package arrangement

// ObstacleFromVertices builds the halfplane view of a convex polygon from
// its vertex loop. The loop may wind either way; it is normalized to
// counterclockwise before the outward edge normals are derived, so that
// every vertex satisfies Normal·v ≤ Offset for every constraint.
//
// This is an input adapter for callers that have vertex data on hand. It
// does not validate convexity; a non-convex loop produces halfplanes whose
// intersection is not the polygon.
func ObstacleFromVertices(vertices []*Point) *Obstacle {
	if len(vertices) < 3 {
		fatalf("cannot build obstacle from %d vertices; a polygon needs at least 3", len(vertices))
	}
	if IsCW(vertices) {
		vertices = Reverse(vertices)
	}
	constraints := make([]Halfplane, 0, len(vertices))
	for i, v := range vertices {
		w := vertices[CircularIndex(i+1, len(vertices))]
		// Outward normal of the counterclockwise edge v→w.
		normal := Point{X: w.Y - v.Y, Y: v.X - w.X}
		constraints = append(constraints, Halfplane{
			Normal: normal,
			Offset: normal.X*v.X + normal.Y*v.Y,
		})
	}
	return &Obstacle{Constraints: constraints, Vertices: vertices}
}

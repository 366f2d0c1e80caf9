package arrangement

import "sort"

// Point is a location in the unit square. Points are referred to everywhere
// else (graph nodes, face vertices, neighbor sets) by their index in the
// Arrangement's point list, which is stable for a given input. Points are
// never mutated after creation.
type Point struct {
	X float64
	Y float64
}

// Halfplane is the linear inequality Normal·x ≤ Offset. Its boundary line
// Normal·x = Offset is what the arrangement intersects.
type Halfplane struct {
	Normal Point
	Offset float64
}

// Obstacle is a convex region given in two redundant views: the halfplanes
// whose intersection is the region, and the vertex loop of its boundary. The
// vertex view is used only to recognize (and drop) the obstacle's own
// outline among the traced faces.
type Obstacle struct {
	Constraints []Halfplane
	Vertices    []*Point
}

// Face is a closed polygonal boundary as a cycle of point ids. Faces coming
// out of Construct wind clockwise.
type Face []int

// IDSet is a set of point ids.
type IDSet map[int]struct{}

func (s IDSet) Add(id int) {
	s[id] = struct{}{}
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

package arrangement

import "sort"

// buildNeighbors derives point adjacency from the per-line point sets. Each
// line's points are sorted into their order along the line; a point's
// neighbors are its immediate predecessor and successor on every line it
// lies on, unioned across lines. The relation is symmetric by construction,
// and the set representation keeps a pair that is adjacent on two lines from
// spawning duplicate tracing branches.
func buildNeighbors(points []*Point, onLine []IDSet) []IDSet {
	neighbors := make([]IDSet, len(points))
	for i := range neighbors {
		neighbors[i] = make(IDSet)
	}
	for _, ids := range onLine {
		colinear := ids.Sorted()
		sort.Slice(colinear, func(a, b int) bool {
			return points[colinear[a]].LexBefore(points[colinear[b]])
		})
		for k := 0; k+1 < len(colinear); k++ {
			neighbors[colinear[k]].Add(colinear[k+1])
			neighbors[colinear[k+1]].Add(colinear[k])
		}
	}
	return neighbors
}

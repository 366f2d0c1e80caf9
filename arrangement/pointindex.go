package arrangement

import "math"

// pointIndex assigns stable dense integer ids to points, merging points that
// are equal within Tolerance. Ids index the points slice.
//
// Floating point coordinates cannot key a map directly: two computations of
// the same crossing differ in the last bits and would fragment one point
// into several. Points are instead hashed into buckets of Tolerance width
// and resolved against the 3×3 bucket neighborhood, so two points within
// Tolerance of each other always meet.
type pointIndex struct {
	points  []*Point
	buckets map[bucketKey][]int
}

type bucketKey struct {
	X int64
	Y int64
}

func newPointIndex() *pointIndex {
	return &pointIndex{buckets: make(map[bucketKey][]int)}
}

func keyFor(p *Point) bucketKey {
	return bucketKey{
		X: int64(math.Floor(p.X / Tolerance)),
		Y: int64(math.Floor(p.Y / Tolerance)),
	}
}

// lookup returns the id of a previously inserted point approximately equal
// to p.
func (idx *pointIndex) lookup(p *Point) (int, bool) {
	center := keyFor(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			key := bucketKey{X: center.X + dx, Y: center.Y + dy}
			for _, id := range idx.buckets[key] {
				if idx.points[id].ApproxEqual(p) {
					return id, true
				}
			}
		}
	}
	return 0, false
}

// insert returns the id for p, allocating a new one unless an approximately
// equal point is already indexed.
func (idx *pointIndex) insert(p *Point) int {
	if id, ok := idx.lookup(p); ok {
		return id
	}
	id := len(idx.points)
	idx.points = append(idx.points, p)
	key := keyFor(p)
	idx.buckets[key] = append(idx.buckets[key], id)
	return id
}

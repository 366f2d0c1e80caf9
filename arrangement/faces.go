package arrangement

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/mpolson64/clutteredenv/dbg"
)

// The face pass walks the planar embedding with its rotation system: from
// each directed edge, keep taking the sharpest available counterclockwise
// continuation until the walk can close back on its start. Every bounded
// convex cell of the arrangement is recovered by at least one of the walks
// (the one entering along the cell's minimal-direction edge, along which the
// directions increase monotonically). Walks that run out of strictly greater
// directions are dead ends and contribute nothing.

type tracer struct {
	points []*Point
	graph  *simple.UndirectedGraph
	angles [][]float64
}

// sortedNeighbors returns the ids adjacent to p in increasing order. The
// graph's own iteration order is map based; the output must not depend on
// it.
func (tr *tracer) sortedNeighbors(p int) []int {
	var ids []int
	it := tr.graph.From(int64(p))
	for it.Next() {
		ids = append(ids, int(it.Node().ID()))
	}
	sort.Ints(ids)
	return ids
}

// trace walks one candidate face starting along the directed edge s→c.
func (tr *tracer) trace(s, c int) (Face, bool) {
	face := Face{s, c}
	inFace := IDSet{}
	inFace.Add(s)
	inFace.Add(c)
	current := c
	lastAngle := tr.angles[s][c]
	for {
		// A walk of three or more points closes as soon as the start is
		// reachable again.
		if len(face) > 2 && tr.graph.HasEdgeBetween(int64(current), int64(s)) {
			return face, true
		}
		next := -1
		best := math.Inf(1)
		for _, q := range tr.sortedNeighbors(current) {
			if inFace.Has(q) {
				continue
			}
			a := tr.angles[current][q]
			// The continuation must point strictly counterclockwise of the
			// edge we arrived on; a near-equal direction would walk straight
			// through the crossing instead of turning.
			if !StrictlyGreater(a, lastAngle) {
				continue
			}
			if a < best {
				best = a
				next = q
			}
		}
		if next < 0 {
			return nil, false
		}
		lastAngle = tr.angles[current][next]
		face = append(face, next)
		inFace.Add(next)
		current = next
	}
}

// traceAll runs a walk from every directed edge and collects the closed
// ones. Start nodes ascend and neighbors are visited in sorted order, so the
// candidate list is deterministic for a given input.
func (tr *tracer) traceAll() []Face {
	var faces []Face
	for s := range tr.points {
		for _, c := range tr.sortedNeighbors(s) {
			if face, ok := tr.trace(s, c); ok {
				faces = append(faces, face)
			}
		}
	}
	return faces
}

// filterFaces reduces the candidates to one face per distinct vertex set and
// drops any face that is just an obstacle's own outline. Survivors are
// reversed from the tracer's counterclockwise order into clockwise order.
func filterFaces(candidates []Face, obstacles []*Obstacle, index *pointIndex) []Face {
	seen := map[string]struct{}{}
	for _, obstacle := range obstacles {
		if key, ok := obstacleKey(obstacle, index); ok {
			seen[key] = struct{}{}
		}
	}
	var faces []Face
	for _, face := range candidates {
		key := face.setKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		faces = append(faces, face.Reversed())
	}
	return faces
}

// obstacleKey locates the obstacle's own vertices in the global point list
// and returns their set key. Each vertex is the crossing of the obstacle's
// two adjacent halfplane boundaries, so under well-formed input the lookup
// always succeeds; if it doesn't, no traced face can match the obstacle
// either and the filter key is moot.
func obstacleKey(obstacle *Obstacle, index *pointIndex) (string, bool) {
	ids := make([]int, 0, len(obstacle.Vertices))
	for _, v := range obstacle.Vertices {
		id, ok := index.lookup(v)
		if !ok {
			return "", false
		}
		ids = append(ids, id)
	}
	return setKey(ids), true
}

// setKey is the face identity used for deduplication: the sorted vertex ids,
// ignoring rotation and winding.
func (f Face) setKey() string {
	return setKey(f)
}

func setKey(ids []int) string {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Reversed returns the cycle with opposite winding.
func (f Face) Reversed() Face {
	reversed := make(Face, 0, len(f))
	for i := len(f) - 1; i >= 0; i-- {
		reversed = append(reversed, f[i])
	}
	return reversed
}

func (f Face) String() string {
	ids := make([]string, len(f))
	for i, id := range f {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("Face %s (%s)", f.DbgName(), strings.Join(ids, " "))
}

// DbgName gives the face a stable readable name for debug output: green for
// well-formed cycles, red for anything shorter than a triangle.
func (f Face) DbgName() string {
	if len(f) == 0 {
		return aurora.Red("Ø").String()
	}
	name := dbg.Name(&f[0])
	if len(f) < 3 {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

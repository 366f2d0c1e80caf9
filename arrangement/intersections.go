package arrangement

// findIntersections crosses every unordered pair of registry lines, keeps
// the crossings that land in the unit square, and dedupes them into a global
// point index. The second result holds, per line, the set of point ids lying
// on that line; ordering along each line happens later, in the neighbor
// pass. Skipped pairs (parallel or coincident lines, out-of-square
// crossings) are not errors.
func findIntersections(lines []Line) (*pointIndex, []IDSet) {
	index := newPointIndex()
	onLine := make([]IDSet, len(lines))
	for i := range onLine {
		onLine[i] = make(IDSet)
	}
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			p, ok := lines[i].Intersect(lines[j])
			if !ok || !inUnitSquare(p) {
				continue
			}
			id := index.insert(p)
			onLine[i].Add(id)
			onLine[j].Add(id)
		}
	}
	return index, onLine
}

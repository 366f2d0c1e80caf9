package arrangement

import "gonum.org/v1/gonum/graph/simple"

// buildGraph materializes the neighbor relation as a simple undirected graph
// whose node ids are point ids. Repeated SetEdge calls collapse naturally,
// and the neighbor relation never relates a point to itself, so the
// simple-graph constraints hold.
func buildGraph(n int, neighbors []IDSet) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for id := 0; id < n; id++ {
		g.AddNode(simple.Node(id))
	}
	for p, set := range neighbors {
		for q := range set {
			if p < q {
				g.SetEdge(g.NewEdge(simple.Node(p), simple.Node(q)))
			}
		}
	}
	return g
}

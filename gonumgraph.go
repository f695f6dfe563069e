package automol

//An adapter exposing the molecular graph through gonum's graph interfaces,
//so that gonum's graph algorithms can run on it directly.

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

type graphNode int64

func (n graphNode) ID() int64 { return int64(n) }

type graphEdge struct {
	from, to graphNode
}

func (e graphEdge) From() graph.Node { return e.from }

func (e graphEdge) To() graph.Node { return e.to }

//bonds are not directional, so reversing is just swapping in place
func (e graphEdge) ReversedEdge() graph.Edge {
	return graphEdge{from: e.to, to: e.from}
}

//gonumGraph implements gonum's graph.Undirected on top of a Graph.
//The neighbor dictionary is computed once at construction.
type gonumGraph struct {
	g    *Graph
	nbrs map[int][]int
}

//Undirected returns a gonum graph.Undirected view of the graph. The view
//snapshots the connectivity, it won't follow later Set* derivatives.
func (G *Graph) Undirected() graph.Undirected {
	return &gonumGraph{g: G, nbrs: G.NeighborKeys()}
}

func (ug *gonumGraph) Node(id int64) graph.Node {
	if _, ok := ug.g.atoms[int(id)]; !ok {
		return nil
	}
	return graphNode(id)
}

func (ug *gonumGraph) Nodes() graph.Nodes {
	keys := ug.g.AtomKeys()
	nodes := make([]graph.Node, len(keys))
	for i, k := range keys {
		nodes[i] = graphNode(k)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (ug *gonumGraph) From(id int64) graph.Nodes {
	ks, ok := ug.nbrs[int(id)]
	if !ok {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(ks))
	for i, k := range ks {
		nodes[i] = graphNode(k)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (ug *gonumGraph) HasEdgeBetween(xid, yid int64) bool {
	if xid == yid {
		return false
	}
	return ug.g.IsBonded(int(xid), int(yid))
}

func (ug *gonumGraph) Edge(uid, vid int64) graph.Edge {
	return ug.EdgeBetween(uid, vid)
}

func (ug *gonumGraph) EdgeBetween(xid, yid int64) graph.Edge {
	if !ug.HasEdgeBetween(xid, yid) {
		return nil
	}
	return graphEdge{from: graphNode(xid), to: graphNode(yid)}
}

package gonumadapter

import (
	"errors"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/nodeflow"
	"github.com/katalvlaran/graphflow/sparse"
)

// ErrNotSquare is returned when the wrapped CSR's row and column spaces
// differ: a gonum directed graph has a single node id space, so only
// homogeneous (square) adjacencies can be adapted.
var ErrNotSquare = errors.New("gonumadapter: adjacency is not square")

// Directed wraps a square forward CSR as a gonum graph.Directed. The CSR is
// shared, not copied; the reverse CSR needed by To is derived once at
// construction.
type Directed struct {
	fwd sparse.CSR // rows = from
	rev sparse.CSR // rows = to
}

var _ graph.Directed = (*Directed)(nil)

// NewDirected adapts a square forward (rows=from) CSR.
func NewDirected(csr sparse.CSR) (*Directed, error) {
	if csr.NumRows != csr.NumCols {
		return nil, ErrNotSquare
	}
	rev, err := sparse.CSRTranspose(csr)
	if err != nil {
		return nil, err
	}
	return &Directed{fwd: csr, rev: rev}, nil
}

// FromRelation adapts a homogeneous relation (NumSrc == NumDst) via its
// forward CSR view.
func FromRelation(r *bipartite.Relation) (*Directed, error) {
	if r.NumSrc != r.NumDst {
		return nil, ErrNotSquare
	}
	csr, err := r.GetAdj()
	if err != nil {
		return nil, err
	}
	return NewDirected(csr)
}

// FromNodeFlow adapts a sampled NodeFlow's graph, which is always square
// over its dense subgraph-local node ids.
func FromNodeFlow(nf *nodeflow.NodeFlow) (*Directed, error) {
	return NewDirected(nf.Graph)
}

// Node returns the node with the given id, or nil if it is out of range.
func (g *Directed) Node(id int64) graph.Node {
	if id < 0 || id >= g.fwd.NumRows {
		return nil
	}
	return simple.Node(id)
}

// Nodes returns all of the graph's nodes, 0..N-1.
func (g *Directed) Nodes() graph.Nodes {
	n := int(g.fwd.NumRows)
	if n == 0 {
		return graph.Empty
	}
	return iterator.NewImplicitNodes(0, n, func(id int) graph.Node {
		return simple.Node(id)
	})
}

// From returns the distinct nodes reachable from id along one out-edge.
func (g *Directed) From(id int64) graph.Nodes {
	return rowNodes(g.fwd, id)
}

// To returns the distinct nodes with an out-edge into id.
func (g *Directed) To(id int64) graph.Nodes {
	return rowNodes(g.rev, id)
}

// HasEdgeBetween reports an edge in either direction between xid and yid.
func (g *Directed) HasEdgeBetween(xid, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo reports an edge uid -> vid.
func (g *Directed) HasEdgeFromTo(uid, vid int64) bool {
	if uid < 0 || uid >= g.fwd.NumRows || vid < 0 || vid >= g.fwd.NumCols {
		return false
	}
	ok, err := sparse.CSRIsNonZero(g.fwd, uid, vid)
	return err == nil && ok
}

// Edge returns the edge uid -> vid if it exists, nil otherwise. For a
// multigraph CSR this is the representative edge; edge-id-level access
// stays on the graphflow side of the boundary.
func (g *Directed) Edge(uid, vid int64) graph.Edge {
	if !g.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

// rowNodes returns row r's distinct column ids as a node iterator.
func rowNodes(csr sparse.CSR, r int64) graph.Nodes {
	if r < 0 || r >= csr.NumRows {
		return graph.Empty
	}
	start := csr.Indptr.MustAt(int(r))
	end := csr.Indptr.MustAt(int(r) + 1)
	seen := make(map[int64]struct{}, end-start)
	nodes := make([]graph.Node, 0, end-start)
	for k := start; k < end; k++ {
		c := csr.Indices.MustAt(int(k))
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		nodes = append(nodes, simple.Node(c))
	}
	if len(nodes) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(nodes)
}

package heterograph

// MetaEdge names the source and destination vertex type of one edge type
// in the meta-graph.
type MetaEdge struct {
	SrcType int
	DstType int
}

// MetaGraph is the small graph of vertex types and edge types that gives a
// HeteroGraph its schema. Edge type ids are positions in Edges.
type MetaGraph struct {
	NumVTypes int
	Edges     []MetaEdge
}

// NewMetaGraph builds a MetaGraph over numVTypes vertex types and the
// given edge-type list.
func NewMetaGraph(numVTypes int, edges []MetaEdge) MetaGraph {
	return MetaGraph{NumVTypes: numVTypes, Edges: edges}
}

// NumEdgeTypes returns the number of edge types (relations) in the schema.
func (m MetaGraph) NumEdgeTypes() int { return len(m.Edges) }

// FindEdge returns the (srcType, dstType) pair for edge type etype.
func (m MetaGraph) FindEdge(etype int) MetaEdge { return m.Edges[etype] }

// OutEdgeTypes returns the edge type ids whose source is vtype.
func (m MetaGraph) OutEdgeTypes(vtype int) []int {
	var out []int
	for i, e := range m.Edges {
		if e.SrcType == vtype {
			out = append(out, i)
		}
	}
	return out
}

// InEdgeTypes returns the edge type ids whose destination is vtype.
func (m MetaGraph) InEdgeTypes(vtype int) []int {
	var in []int
	for i, e := range m.Edges {
		if e.DstType == vtype {
			in = append(in, i)
		}
	}
	return in
}

// File: methods_clone.go
// Role: Clone and Clear.
package core

// Clone returns a deep copy of vertices, edges and adjacency.
// Vertex Metadata maps are copied one level deep (values are shared).
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]string, len(g.adjacency)),
	}
	for id, v := range g.vertices {
		meta := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			meta[k] = val
		}
		c.vertices[id] = &Vertex{ID: id, Metadata: meta}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for from, inner := range g.adjacency {
		m := make(map[string]string, len(inner))
		for to, eid := range inner {
			m[to] = eid
		}
		c.adjacency[from] = m
	}

	return c
}

// Clear removes all vertices and edges but keeps the configuration flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	g.nextEdgeID = 0
}

// File: methods_adjacent.go
// Role: Edges and neighborhoods.
//
// Determinism:
//   - NeighborIDs() returns unique words sorted ascending.
package core

import "sort"

// AddEdge joins from and to, creating either vertex if missing.
//
// Implementation:
//   - Stage 1: Validate IDs and reject self-loops.
//   - Stage 2: Register both vertices under muVert.
//   - Stage 3: Under muEdgeAdj, reject an existing edge, then write both
//     mirrored adjacency entries and bump the edge count.
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint is "".
//   - ErrLoopNotAllowed: if from == to.
//   - ErrMultiEdgeNotAllowed: if the edge already exists, in either direction.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	ensureAdjacency(g, from)
	ensureAdjacency(g, to)
	if _, dup := g.adjacency[from][to]; dup {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether from and to are adjacent. Missing vertices ⇒ false.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// NeighborIDs returns the words adjacent to id, sorted ascending.
// The slice is fresh and safe to retain.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) for d neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency guarantees that adjacency[id] is initialized.
// Must be called under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]struct{})
	}
}

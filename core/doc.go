// Package core defines the explicit word graph: an undirected, unweighted,
// simple graph whose vertices are words and whose edges join words that
// differ in one letter.
//
// The solver never builds this graph; it generates neighbors on demand.
// core backs the offline analysis in wordgraph, where the whole dictionary
// is materialized once and then queried many times.
//
// Policy:
//
//   - Edges are undirected; AddEdge(a, b) and AddEdge(b, a) name the same edge.
//   - Self-loops are rejected with ErrLoopNotAllowed.
//   - Parallel edges are rejected with ErrMultiEdgeNotAllowed.
//   - Enumerations (Vertices, NeighborIDs) are sorted ascending.
//
// Concurrency:
//
// All methods are safe for concurrent use. muVert guards the vertex catalog
// and muEdgeAdj guards adjacency; when both are needed they are taken in
// that order.
//
// Complexity:
//
//   - AddVertex, HasVertex, AddEdge, HasEdge, Degree: O(1) average.
//   - Vertices: O(V log V). NeighborIDs: O(d log d).
//   - Memory: O(V + E).
package core

// Package bfs implements breadth-first traversal over a core.Graph.
//
// The traversal records visit order, the depth of every reached word and
// its parent in the BFS tree, so PathTo yields a shortest ladder in the
// explicit graph. wordgraph uses it to label connected components and to
// answer ladder queries against a fully built dictionary graph.
//
// Hooks and limits:
//
//   - WithContext: cancellation, checked once per dequeue.
//   - WithMaxDepth: do not enqueue words deeper than d (0 = unlimited).
//   - WithOnVisit: called per visited word; a non-nil error stops the walk
//     and is returned wrapped, together with the partial result.
//
// Complexity: O(V + E) time and O(V) memory for the reached part of the graph.
package bfs

// Package wordgraph materializes the whole word graph for offline
// diagnostics: edge counts, degrees and connected components.
//
// Build compares every pair of equal-length words, O(Σ n_k²·L) for n_k
// words of length k. That is far too slow for the interactive path, which
// generates neighbors on demand with neighbor.Finder; wordgraph exists to
// answer questions about a dictionary as a whole, such as "which words can
// never reach each other".
//
// The graph itself is a core.Graph; components are labeled with bfs
// floods and Ladder answers point queries with a BFS from the first word.
//
// A Graph is immutable once built and safe for concurrent reads.
package wordgraph

// Package search finds word ladders: the shortest chain of dictionary words
// from a start word to a target word in which consecutive words differ by
// exactly one letter.
//
// What
//
//   - Three strategies over the same implicit graph and the same neighbor
//     Source, differing only in frontier ordering and cost:
//   - BreadthFirst: FIFO queue, words marked visited when enqueued.
//   - UniformCost:  min-heap on g (path length), words finalized when popped.
//   - AStar:        min-heap on f = g + h with h the Hamming distance to the
//     target, words finalized when popped.
//   - A shared bound: MaxIterations pops, MaxTime wall time, an optional
//     cancel predicate and context, all checked once per loop iteration.
//   - A Result that always says why the search ended: Found, NoPath,
//     Timeout, IterationLimit or Canceled. Normal outcomes are never errors.
//
// Why
//
//	The graph is never materialized. Neighbors come from a neighbor.Source,
//	normally a shared neighbor.Cache, so repeated hints and comparison runs
//	reuse work. Large or disconnected dictionaries are cut off by the bound
//	instead of exploring forever.
//
// Optimality
//
//	Every edge costs 1. BFS pops words in non-decreasing depth. UCS pops in
//	non-decreasing g. The Hamming heuristic never overestimates and drops by
//	at most one per edge, so it is admissible and consistent and the first
//	target popped by A* lies on a shortest ladder. All three return ladders
//	of equal length whenever one exists; the words may differ when several
//	shortest ladders exist.
//
// Determinism
//
//	Neighbors are expanded in Source order. Heap ties are broken by larger
//	g first, then by insertion order, so repeated runs return the same ladder.
//
// Errors (sentinel, misuse only):
//
//   - ErrNilDictionary   if the dictionary is nil.
//   - ErrUnknownStrategy if the Strategy value is not one of the constants.
//   - ErrOptionViolation if an Option was given an invalid value.
//
// Complexity
//
//   - Time:  O(V·L·26) lookups plus O(E log E) heap work for UCS and A*,
//     V the words reached, L the word length.
//   - Space: O(V) for visited, parent and frontier state.
package search

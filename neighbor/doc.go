// Package neighbor computes the edge function of the implicit word graph:
// for a word, the dictionary words one letter substitution away.
//
// What
//
//   - Finder enumerates substitutions: every position × every letter of the
//     alphabet, keeping candidates the dictionary contains.
//     Cost is O(L·26) membership lookups, independent of dictionary size.
//   - Pairwise compares the word against every dictionary word.
//     Cost is O(N·L); it exists for diagnostics and cross-checks only.
//   - Cache memoizes any Source by (dictionary ID, word). Entries computed
//     against one dictionary are never served for another.
//
// Determinism
//
//	Finder returns neighbors position-major, then in alphabet order, so a
//	search that expands neighbors in slice order is reproducible.
//
// Concurrency
//
//	Finder and Pairwise are stateless. Cache is safe for concurrent use and
//	collapses concurrent misses on the same key into a single computation.
//	Slices returned from a Cache are shared and must not be modified.
package neighbor

// Package wordladder finds shortest word ladders: sequences of equal-length
// dictionary words where each step changes exactly one letter.
//
// What is inside?
//
//   - Dictionary loading with length filtering and per-length views
//   - Neighbor generation by letter substitution, with a shared cache
//   - One bounded search loop behind three strategies: BFS, UCS and A*
//   - Hints, move validation and side-by-side strategy comparison
//   - Play sessions that track moves toward a target word
//   - Whole-graph analysis: edge counts, connected components and ladders
//
// The word graph is never materialized for solving. Neighbors of a word are
// generated on demand by trying every letter at every position, so a search
// touches only the part of the dictionary it reaches.
//
// Layout:
//
//	word/        letter-level helpers: Valid, Hamming, OneApart, ValidPath
//	dictionary/  immutable word Sets, loaders, WordsOfLength views
//	neighbor/    Finder (substitution), Pairwise (diagnostics), Cache
//	search/      Engine, strategies, bounds, Result, Prometheus metrics
//	hint/        Advisor: next-move hints, CheckMove, Compare, Session
//	core/        undirected string-keyed graph
//	bfs/         breadth-first walker over core graphs
//	wordgraph/   explicit word graph on core: statistics, components, Ladder
//	config/      YAML configuration
//	cmd/         the wordladder CLI
//
// Quick example:
//
//	dict := dictionary.NewSet("cat", "cot", "cog", "dog")
//	res, _ := search.Search(search.AStar, "cat", "dog", dict)
//	fmt.Println(res.Path) // [cat cot cog dog]
//
//	go get github.com/katalvlaran/wordladder
package wordladder

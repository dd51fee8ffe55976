package wordgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/word"
)

// Graph is the explicit word graph of a dictionary together with its
// connected components.
type Graph struct {
	g *core.Graph

	// comp maps each word to its component; components are numbered by
	// decreasing size, ties by smallest member.
	comp  map[string]int
	comps [][]string
}

// FromDictionary builds the Graph of every word in s.
func FromDictionary(s *dictionary.Set, opts ...Option) (*Graph, error) {
	return Build(s.Words(), opts...)
}

// Build connects every pair of equal-length words that differ in exactly one
// position. Duplicate input words collapse.
//
// Returns ErrOptionViolation, ErrTooLarge, or the context error if the build
// was canceled.
//
// Complexity: O(Σ n_k²·L) time, O(V + E) memory.
func Build(words []string, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seen := make(map[string]struct{}, len(words))
	uniq := make([]string, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup || w == "" {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	if o.MaxWords > 0 && len(uniq) > o.MaxWords {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(uniq), o.MaxWords)
	}
	sort.Strings(uniq)

	cg := core.NewGraph()
	groups := make(map[int][]string)
	for _, w := range uniq {
		if err := cg.AddVertex(w); err != nil {
			return nil, err
		}
		groups[len(w)] = append(groups[len(w)], w)
	}
	for _, group := range groups {
		for a, u := range group {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
			// forward-only scan visits each pair once
			for _, v := range group[a+1:] {
				if !word.OneApart(u, v) {
					continue
				}
				if err := cg.AddEdge(u, v); err != nil {
					return nil, fmt.Errorf("wordgraph: edge %s-%s: %w", u, v, err)
				}
			}
		}
	}

	g := &Graph{g: cg}
	if err := g.label(o.Ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// Order returns the number of words.
func (g *Graph) Order() int { return g.g.VertexCount() }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.g.EdgeCount() }

// Words returns the vertices in ascending order. The slice is a copy.
func (g *Graph) Words() []string { return g.g.Vertices() }

// HasWord reports whether w is a vertex.
func (g *Graph) HasWord(w string) bool { return g.g.HasVertex(w) }

// Neighbors returns the words adjacent to w, ascending.
// Returns ErrWordNotFound if w is not a vertex.
func (g *Graph) Neighbors(w string) ([]string, error) {
	nbrs, err := g.g.NeighborIDs(w)
	if err != nil {
		return nil, notFound(w, err)
	}
	return nbrs, nil
}

// Degree returns the neighbor count of w, or ErrWordNotFound.
func (g *Graph) Degree(w string) (int, error) {
	d, err := g.g.Degree(w)
	if err != nil {
		return 0, notFound(w, err)
	}
	return d, nil
}

// Stats summarizes the graph.
func (g *Graph) Stats() Stats {
	st := Stats{
		Words:      g.g.VertexCount(),
		Edges:      g.g.EdgeCount(),
		Components: len(g.comps),
	}
	if len(g.comps) > 0 {
		st.Largest = len(g.comps[0])
	}
	for _, w := range g.g.Vertices() {
		d, _ := g.g.Degree(w)
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}
	if st.Words > 0 {
		st.MeanDegree = float64(2*st.Edges) / float64(st.Words)
	}
	return st
}

// notFound maps core lookup failures onto ErrWordNotFound.
func notFound(w string, err error) error {
	if errors.Is(err, core.ErrVertexNotFound) || errors.Is(err, core.ErrEmptyVertexID) {
		return fmt.Errorf("%w: %q", ErrWordNotFound, w)
	}
	return err
}

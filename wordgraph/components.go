package wordgraph

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/wordladder/bfs"
)

// label floods every unseen word with a BFS and numbers the components.
//
// Time: O(V + E). Memory: O(V).
func (g *Graph) label(ctx context.Context) error {
	g.comp = make(map[string]int, g.g.VertexCount())

	var comps [][]string
	for _, w := range g.g.Vertices() {
		if _, done := g.comp[w]; done {
			continue
		}
		res, err := bfs.BFS(g.g, w, bfs.WithContext(ctx))
		if err != nil {
			return err
		}
		members := append([]string(nil), res.Order...)
		sort.Strings(members)
		for _, m := range members {
			g.comp[m] = -1
		}
		comps = append(comps, members)
	}

	// largest first; members are sorted, so members[0] is the smallest word
	sort.SliceStable(comps, func(a, b int) bool {
		if len(comps[a]) != len(comps[b]) {
			return len(comps[a]) > len(comps[b])
		}
		return comps[a][0] < comps[b][0]
	})
	for id, members := range comps {
		for _, m := range members {
			g.comp[m] = id
		}
	}
	g.comps = comps
	return nil
}

// Components returns every connected component as a sorted word list,
// largest first. The slices are copies.
func (g *Graph) Components() [][]string {
	out := make([][]string, len(g.comps))
	for c, members := range g.comps {
		out[c] = append([]string(nil), members...)
	}
	return out
}

// ComponentOf returns the component index of w, matching Components order.
func (g *Graph) ComponentOf(w string) (int, error) {
	c, ok := g.comp[w]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrWordNotFound, w)
	}
	return c, nil
}

// Connected reports whether a ladder joins a and b. Unknown words are never
// connected.
func (g *Graph) Connected(a, b string) bool {
	ca, ok := g.comp[a]
	if !ok {
		return false
	}
	cb, ok := g.comp[b]
	return ok && ca == cb
}

// errReached stops the ladder walk at its target.
var errReached = errors.New("wordgraph: target reached")

// Ladder returns a shortest ladder from a to b in the explicit graph, with
// ties going to the alphabetically smaller neighbor.
//
// Returns ErrWordNotFound for an unknown word and ErrNoLadder when a and b
// lie in different components.
func (g *Graph) Ladder(a, b string) ([]string, error) {
	for _, w := range []string{a, b} {
		if !g.HasWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrWordNotFound, w)
		}
	}
	if !g.Connected(a, b) {
		return nil, fmt.Errorf("%w: %q and %q", ErrNoLadder, a, b)
	}

	res, err := bfs.BFS(g.g, a, bfs.WithOnVisit(func(id string, _ int) error {
		if id == b {
			return errReached
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errReached) {
		return nil, err
	}
	return res.PathTo(b)
}

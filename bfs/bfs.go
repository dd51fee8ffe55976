package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// queueItem is one pending word with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context

	queue   []queueItem
	head    int
	visited map[string]bool
	res     *Result
}

// BFS walks g breadth-first from start.
//
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation for bad
// input. Cancellation, neighbor failures and OnVisit errors are returned
// together with the partial result gathered so far.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	// Prepare walker; maps grow with the reached part only, so flooding many
	// small components stays linear overall.
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[w.head]
		w.head++

		// visit
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %q: %w", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.id)
		}
	}
	return nil
}

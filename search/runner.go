package search

import (
	"time"

	"github.com/katalvlaran/wordladder/dictionary"
)

// runner holds the mutable state of one Search call.
type runner struct {
	strategy Strategy
	opts     Options
	dict     dictionary.Dictionary
	target   string

	began      time.Time
	iterations int
	expanded   int
	seq        uint64

	// closed marks visited words: at enqueue for FIFO, at pop for heaps.
	closed map[string]bool
	// best is the lowest g pushed so far per word (heap frontiers only).
	best   map[string]int
	parent map[string]string
}

func newRunner(e *Engine, target string, dict dictionary.Dictionary) *runner {
	return &runner{
		strategy: e.strategy,
		opts:     e.opts,
		dict:     dict,
		target:   target,
		began:    e.opts.Now(),
		closed:   make(map[string]bool),
		best:     make(map[string]int),
		parent:   make(map[string]string),
	}
}

// run drives the shared loop: bound check → pop → goal test → expand → push.
func (r *runner) run(start string, fr frontier, h func(w, target string) int) Result {
	eager := fr.marksOnPush()

	// Seed the frontier with the start word (no parent)
	if eager {
		r.closed[start] = true
	}
	r.best[start] = 0
	fr.push(entry{word: start, g: 0, f: h(start, r.target), seq: r.nextSeq()})

	for fr.len() > 0 {
		// bound check, once per pop
		if outcome, stop := r.bound(); stop {
			return r.finish(outcome, nil)
		}

		// pop; every pop counts as an iteration, stale ones included
		e := fr.pop()
		r.iterations++

		if !eager {
			// lazy deletion: a cheaper copy was finalized already
			if r.closed[e.word] {
				continue
			}
			r.closed[e.word] = true
			if e.parent != "" {
				r.parent[e.word] = e.parent
			}
		}

		// goal test
		if e.word == r.target {
			return r.found(r.pathTo(e.word))
		}

		// expand, unless the depth cap forbids longer ladders
		if r.opts.MaxDepth > 0 && e.g >= r.opts.MaxDepth {
			continue
		}
		r.expanded++
		r.opts.OnExpand(e.word, e.g)

		// push every neighbor not yet closed and not already reached as cheaply
		g := e.g + 1
		for _, n := range r.opts.Source.Neighbors(e.word, r.dict) {
			if r.closed[n] {
				continue
			}
			if eager {
				r.closed[n] = true
				r.parent[n] = e.word
			} else if b, ok := r.best[n]; ok && g >= b {
				continue
			}
			r.best[n] = g
			fr.push(entry{word: n, parent: e.word, g: g, f: g + h(n, r.target), seq: r.nextSeq()})
		}
	}
	// frontier exhausted
	return r.finish(NoPath, nil)
}

// bound reports whether the search must stop before the next pop.
func (r *runner) bound() (Outcome, bool) {
	if r.opts.MaxIterations > 0 && r.iterations >= r.opts.MaxIterations {
		return IterationLimit, true
	}
	if r.opts.MaxTime > 0 && r.opts.Now().Sub(r.began) > r.opts.MaxTime {
		return Timeout, true
	}
	if r.opts.Cancel() {
		return Canceled, true
	}
	select {
	case <-r.opts.Ctx.Done():
		return Canceled, true
	default:
	}
	return 0, false
}

func (r *runner) nextSeq() uint64 {
	r.seq++
	return r.seq
}

// pathTo follows parent links back to the start and reverses them.
func (r *runner) pathTo(w string) []string {
	path := []string{w}
	for {
		p, ok := r.parent[w]
		if !ok {
			break
		}
		path = append(path, p)
		w = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (r *runner) found(path []string) Result {
	return r.finish(Found, path)
}

func (r *runner) finish(o Outcome, path []string) Result {
	return Result{
		Outcome:    o,
		Path:       path,
		Strategy:   r.strategy,
		Iterations: r.iterations,
		Expanded:   r.expanded,
		Elapsed:    r.opts.Now().Sub(r.began),
	}
}

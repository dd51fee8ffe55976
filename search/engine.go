package search

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/word"
)

// Searcher finds a ladder from start to target inside dict.
type Searcher interface {
	Search(start, target string, dict dictionary.Dictionary) (Result, error)
}

// Engine runs one Strategy under a fixed set of Options.
// An Engine holds no per-call state and is safe for concurrent use as long
// as its Source and hooks are.
type Engine struct {
	strategy Strategy
	opts     Options
}

var _ Searcher = (*Engine)(nil)

// New validates strategy and opts and returns a ready Engine.
// Returns ErrUnknownStrategy or ErrOptionViolation.
func New(strategy Strategy, opts ...Option) (*Engine, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Engine{strategy: strategy, opts: o}, nil
}

// Search is shorthand for New followed by Engine.Search.
func Search(strategy Strategy, start, target string, dict dictionary.Dictionary, opts ...Option) (Result, error) {
	e, err := New(strategy, opts...)
	if err != nil {
		return Result{}, err
	}
	return e.Search(start, target, dict)
}

// Strategy returns the engine's strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Search looks for a shortest ladder from start to target.
//
// start == target yields Found([start]) at once. Otherwise a start or
// target missing from dict yields NoPath without searching; words of
// different lengths are not rejected and simply never connect.
//
// The only errors are ErrNilDictionary and errors from misuse; every
// search outcome, including exhaustion and bounds, is a Result.
func (e *Engine) Search(start, target string, dict dictionary.Dictionary) (Result, error) {
	if dict == nil {
		return Result{}, ErrNilDictionary
	}

	r := newRunner(e, target, dict)
	var res Result
	switch {
	case start == target:
		res = r.found([]string{start})
	case !dict.Contains(start) || !dict.Contains(target):
		res = r.finish(NoPath, nil)
	default:
		res = r.run(start, e.frontier(), e.heuristic())
	}

	e.report(res)
	return res, nil
}

// frontier returns a fresh frontier for the engine's strategy.
func (e *Engine) frontier() frontier {
	if e.strategy == BreadthFirst {
		return &fifo{}
	}
	return &priorityQueue{}
}

// heuristic returns h for the strategy; UCS is the heap search with h ≡ 0.
func (e *Engine) heuristic() func(w, target string) int {
	if e.strategy == AStar {
		return Heuristic
	}
	return func(string, string) int { return 0 }
}

// report feeds the logger and metrics.
func (e *Engine) report(res Result) {
	e.opts.Logger.Debug("search finished",
		slog.String("strategy", res.Strategy.String()),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("hops", res.Hops()),
		slog.Int("iterations", res.Iterations),
		slog.Int("expanded", res.Expanded),
		slog.Duration("elapsed", res.Elapsed))
	if e.opts.Metrics != nil {
		e.opts.Metrics.Observe(res)
	}
}

// Heuristic is the A* estimate: the Hamming distance from w to target.
// It never overestimates the remaining edits and changes by at most one
// per edge.
func Heuristic(w, target string) int {
	return word.Hamming(w, target)
}

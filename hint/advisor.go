package hint

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/neighbor"
	"github.com/katalvlaran/wordladder/search"
)

// Option configures an Advisor.
type Option func(*Advisor)

// WithCache shares an existing neighbor cache.
func WithCache(c *neighbor.Cache) Option {
	return func(a *Advisor) {
		if c != nil {
			a.cache = c
		}
	}
}

// WithSearchOptions appends options passed to every engine the Advisor builds.
func WithSearchOptions(opts ...search.Option) Option {
	return func(a *Advisor) { a.searchOpts = append(a.searchOpts, opts...) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Advisor) {
		if l != nil {
			a.logger = l
		}
	}
}

// Advisor answers hint requests for one player session. All searches it runs
// share one neighbor cache, so repeated hints during a game are cheap.
// An Advisor is safe for concurrent use.
type Advisor struct {
	strategy   search.Strategy
	cache      *neighbor.Cache
	searchOpts []search.Option
	logger     *slog.Logger
	engine     *search.Engine
}

// Hint is a suggestion for the next move.
type Hint struct {
	// Next is the suggested word; empty when OK is false.
	Next string
	OK   bool

	// Result is the underlying search result.
	Result search.Result
}

// Message renders the hint for a player.
func (h Hint) Message() string { return Message(h.Result) }

// NewAdvisor builds an Advisor whose Hint uses strategy.
func NewAdvisor(strategy search.Strategy, opts ...Option) (*Advisor, error) {
	a := &Advisor{
		strategy: strategy,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cache == nil {
		c, err := neighbor.NewCache()
		if err != nil {
			return nil, err
		}
		a.cache = c
	}

	e, err := search.New(strategy, a.engineOptions()...)
	if err != nil {
		return nil, fmt.Errorf("hint: %w", err)
	}
	a.engine = e
	return a, nil
}

// engineOptions returns the caller's search options with the shared cache
// and logger applied last.
func (a *Advisor) engineOptions(extra ...search.Option) []search.Option {
	opts := make([]search.Option, 0, len(a.searchOpts)+len(extra)+2)
	opts = append(opts, a.searchOpts...)
	opts = append(opts, search.WithNeighborSource(a.cache), search.WithLogger(a.logger))
	return append(opts, extra...)
}

// Cache returns the shared neighbor cache.
func (a *Advisor) Cache() *neighbor.Cache { return a.cache }

// Hint searches from current to target and suggests the next word.
func (a *Advisor) Hint(current, target string, dict dictionary.Dictionary) (Hint, error) {
	res, err := a.engine.Search(current, target, dict)
	if err != nil {
		return Hint{}, err
	}
	next, ok := NextMove(res)
	a.logger.Debug("hint",
		slog.String("current", current),
		slog.String("target", target),
		slog.String("strategy", res.Strategy.String()),
		slog.String("outcome", res.Outcome.String()),
		slog.String("next", next))
	return Hint{Next: next, OK: ok, Result: res}, nil
}

// HintWith is Hint with a one-off strategy. The default strategy reuses the
// Advisor's engine; any other builds a fresh engine over the shared cache.
func (a *Advisor) HintWith(strategy search.Strategy, current, target string, dict dictionary.Dictionary) (Hint, error) {
	if strategy == a.strategy {
		return a.Hint(current, target, dict)
	}
	res, err := search.Search(strategy, current, target, dict, a.engineOptions()...)
	if err != nil {
		return Hint{}, fmt.Errorf("hint: %w", err)
	}
	next, ok := NextMove(res)
	return Hint{Next: next, OK: ok, Result: res}, nil
}

// Comparison holds one result per strategy for the same query.
type Comparison struct {
	// RunID correlates the log records of one comparison.
	RunID  uuid.UUID
	Start  string
	Target string

	// Results is in the order the strategies were requested.
	Results []search.Result
}

// Agree reports whether every strategy ended with the same outcome and,
// when found, the same ladder length.
func (c Comparison) Agree() bool {
	if len(c.Results) == 0 {
		return true
	}
	first := c.Results[0]
	for _, r := range c.Results[1:] {
		if r.Outcome != first.Outcome || r.Hops() != first.Hops() {
			return false
		}
	}
	return true
}

// Fewest returns the found result with the fewest expanded words.
func (c Comparison) Fewest() (search.Result, bool) {
	var best search.Result
	ok := false
	for _, r := range c.Results {
		if r.Found() && (!ok || r.Expanded < best.Expanded) {
			best, ok = r, true
		}
	}
	return best, ok
}

// Compare runs strategies concurrently over the shared cache. With no
// strategies given, all of them run. Canceling ctx ends pending searches
// with search.Canceled.
func (a *Advisor) Compare(ctx context.Context, start, target string, dict dictionary.Dictionary, strategies ...search.Strategy) (Comparison, error) {
	if len(strategies) == 0 {
		strategies = search.Strategies()
	}
	cmp := Comparison{
		RunID:   uuid.New(),
		Start:   start,
		Target:  target,
		Results: make([]search.Result, len(strategies)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		i, s := i, s
		g.Go(func() error {
			res, err := search.Search(s, start, target, dict, a.engineOptions(search.WithContext(gctx))...)
			if err != nil {
				return fmt.Errorf("hint: %s: %w", s, err)
			}
			cmp.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}

	for _, r := range cmp.Results {
		a.logger.Info("comparison result",
			slog.String("run_id", cmp.RunID.String()),
			slog.String("strategy", r.Strategy.String()),
			slog.String("outcome", r.Outcome.String()),
			slog.Int("hops", r.Hops()),
			slog.Int("expanded", r.Expanded),
			slog.Duration("elapsed", r.Elapsed))
	}
	return cmp, nil
}

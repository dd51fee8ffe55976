package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/wordladder/neighbor"
)

// Sentinel errors for search construction and execution.
var (
	// ErrNilDictionary is returned when no dictionary is supplied.
	ErrNilDictionary = errors.New("search: dictionary is nil")

	// ErrUnknownStrategy is returned for a Strategy outside the defined set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Default bounds.
const (
	DefaultMaxIterations = 10000
	DefaultMaxTime       = 5 * time.Second
)

// Strategy selects the frontier ordering.
type Strategy uint8

const (
	// BreadthFirst expands words in FIFO order.
	BreadthFirst Strategy = iota + 1
	// UniformCost expands words in order of path cost g.
	UniformCost
	// AStar expands words in order of g + Hamming distance to the target.
	AStar
)

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, UniformCost, AStar}
}

// String returns the short label used in logs, metrics and CLI output.
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "BFS"
	case UniformCost:
		return "UCS"
	case AStar:
		return "A*"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s >= BreadthFirst && s <= AStar
}

// ParseStrategy maps a user-supplied label to a Strategy. It is meant for
// configuration and command-line boundaries only.
func ParseStrategy(label string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "ucs", "uniform-cost", "uniformcost", "dijkstra":
		return UniformCost, nil
	case "a*", "astar", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, label)
}

// Outcome tags how a search ended.
type Outcome uint8

const (
	// Found means Result.Path holds a shortest ladder.
	Found Outcome = iota + 1
	// NoPath means the frontier emptied without reaching the target.
	NoPath
	// Timeout means MaxTime elapsed first.
	Timeout
	// IterationLimit means MaxIterations pops happened first.
	IterationLimit
	// Canceled means the cancel predicate or the context stopped the search.
	Canceled
)

// String returns a lowercase, label-safe name.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NoPath:
		return "no_path"
	case Timeout:
		return "timeout"
	case IterationLimit:
		return "iteration_limit"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// GaveUp reports whether the search stopped on a bound rather than
// proving the target unreachable.
func (o Outcome) GaveUp() bool {
	return o == Timeout || o == IterationLimit || o == Canceled
}

// Result is the outcome of one search call.
type Result struct {
	// Outcome is always set.
	Outcome Outcome

	// Path runs start..target inclusive. Non-nil iff Outcome == Found.
	Path []string

	// Strategy that produced this result.
	Strategy Strategy

	// Iterations counts frontier pops, stale ones included.
	Iterations int

	// Expanded counts words whose neighbors were generated.
	Expanded int

	// Elapsed is the wall time spent inside the call.
	Elapsed time.Duration
}

// Found reports whether a ladder was found.
func (r Result) Found() bool { return r.Outcome == Found }

// Hops returns the number of edits on the ladder, or -1 when none was found.
func (r Result) Hops() int {
	if r.Outcome != Found {
		return -1
	}
	return len(r.Path) - 1
}

// Option configures an Engine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the bound, the neighbor source and the hooks of an Engine.
type Options struct {
	// Ctx is polled once per iteration; when done the search ends Canceled.
	Ctx context.Context

	// MaxIterations caps frontier pops; 0 disables the cap.
	MaxIterations int

	// MaxTime caps wall time per call; 0 disables the cap.
	MaxTime time.Duration

	// MaxDepth caps ladder length in edits; 0 disables the cap.
	// Exceeding it is reported as NoPath.
	MaxDepth int

	// Source yields neighbors. Defaults to an uncached neighbor.Finder.
	Source neighbor.Source

	// Cancel is polled once per iteration; true ends the search Canceled.
	Cancel func() bool

	// OnExpand is called once for each expanded word with its depth.
	OnExpand func(word string, depth int)

	// Logger receives one debug record per search.
	Logger *slog.Logger

	// Metrics, when set, observes every finished search.
	Metrics *Metrics

	// Now reads the clock used by the MaxTime bound.
	Now func() time.Time

	err error
}

// DefaultOptions returns Options with the standard bound
// (10000 iterations, 5 seconds), no depth cap, an uncached Finder,
// no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: DefaultMaxIterations,
		MaxTime:       DefaultMaxTime,
		Source:        neighbor.Finder{},
		Cancel:        func() bool { return false },
		OnExpand:      func(string, int) {},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:           time.Now,
	}
}

// WithContext sets a context polled once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations caps the number of frontier pops.
//
//	n > 0: cap at n
//	n == 0: no cap
//	n < 0: ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithMaxTime caps the wall time of one call. Zero disables the cap;
// a negative duration is an ErrOptionViolation.
func WithMaxTime(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxTime cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.MaxTime = d
	}
}

// WithMaxDepth caps ladder length in edits. Zero disables the cap;
// a negative depth is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithNeighborSource injects the neighbor source, typically a shared
// *neighbor.Cache.
func WithNeighborSource(src neighbor.Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Source = src
		}
	}
}

// WithCancel registers a predicate polled once per iteration.
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cancel = fn
		}
	}
}

// WithOnExpand registers a callback fired for each expanded word.
func WithOnExpand(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithClock replaces time.Now for the MaxTime bound.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

package wordgraph

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrWordNotFound is returned when a queried word is not a vertex.
	ErrWordNotFound = errors.New("wordgraph: word not found")

	// ErrNoLadder is returned when two words lie in different components.
	ErrNoLadder = errors.New("wordgraph: no ladder")

	// ErrTooLarge is returned when the input exceeds MaxWords.
	ErrTooLarge = errors.New("wordgraph: too many words")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wordgraph: invalid option supplied")
)

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Ctx is polled between length groups and rows of the pairwise scan.
	Ctx context.Context

	// MaxWords refuses inputs larger than this; 0 means no limit.
	MaxWords int

	err error
}

// DefaultOptions returns a background context and no size limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxWords refuses to build graphs with more than n words.
//
//	n > 0: limit
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxWords(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxWords cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxWords = n
	}
}

// Stats summarizes a Graph.
type Stats struct {
	Words      int     // vertices
	Edges      int     // undirected edges
	Components int     // connected components
	Largest    int     // size of the largest component
	Isolated   int     // words with no neighbor
	MaxDegree  int     // largest neighbor count
	MeanDegree float64 // 2·Edges / Words
}

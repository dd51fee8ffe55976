package dictionary

import (
	"sort"
	"sync"
	"sync/atomic"
)

// lastID is the process-wide identity counter for Sets.
var lastID atomic.Uint64

// Set is an immutable word set. Build one with NewSet or Load. A nil *Set
// behaves as an empty dictionary with ID 0.
type Set struct {
	id    uint64
	words map[string]struct{}

	// byLength memoizes WordsOfLength views.
	mu       sync.Mutex
	byLength map[int]*Set
}

// NewSet builds a Set from words. Duplicates collapse; input is taken
// verbatim, so callers wanting normalization should use Load.
//
// Complexity: O(N).
func NewSet(words ...string) *Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return newSet(m)
}

func newSet(m map[string]struct{}) *Set {
	return &Set{
		id:    lastID.Add(1),
		words: m,
	}
}

// ID implements Dictionary.
func (s *Set) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Len implements Dictionary.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Contains implements Dictionary.
func (s *Set) Contains(w string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[w]
	return ok
}

// Words returns all words in ascending order. The slice is a fresh copy.
//
// Complexity: O(N log N).
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Lengths returns the distinct word lengths present, ascending.
func (s *Set) Lengths() []int {
	if s == nil {
		return nil
	}
	seen := make(map[int]struct{})
	for w := range s.words {
		seen[len(w)] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// WordsOfLength returns the sub-dictionary of words with exactly n letters.
// The view is computed once per length and reused by later calls, so a
// game that asks for the same length twice gets the same ID back and keeps
// its neighbor cache warm.
//
// A nil Set yields an empty view.
//
// Complexity: O(N) first call, O(1) after.
func (s *Set) WordsOfLength(n int) *Set {
	if s == nil {
		return NewSet()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.byLength[n]; ok {
		return v
	}
	m := make(map[string]struct{})
	for w := range s.words {
		if len(w) == n {
			m[w] = struct{}{}
		}
	}
	v := newSet(m)
	if s.byLength == nil {
		s.byLength = make(map[int]*Set)
	}
	s.byLength[n] = v
	return v
}

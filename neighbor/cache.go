package neighbor

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wordladder/dictionary"
)

// ErrOptionViolation is returned by NewCache for invalid options.
var ErrOptionViolation = errors.New("neighbor: invalid option supplied")

// cacheKey scopes a word to the dictionary it was computed against.
type cacheKey struct {
	dict uint64
	word string
}

func (k cacheKey) String() string {
	return strconv.FormatUint(k.dict, 36) + ":" + k.word
}

// store is the backing map of a Cache.
type store interface {
	get(k cacheKey) ([]string, bool)
	put(k cacheKey, v []string)
	len() int
	purge()
}

// mapStore never evicts.
type mapStore struct {
	mu sync.RWMutex
	m  map[cacheKey][]string
}

func (s *mapStore) get(k cacheKey) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[k]
	return v, ok
}

func (s *mapStore) put(k cacheKey, v []string) {
	s.mu.Lock()
	s.m[k] = v
	s.mu.Unlock()
}

func (s *mapStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func (s *mapStore) purge() {
	s.mu.Lock()
	s.m = make(map[cacheKey][]string)
	s.mu.Unlock()
}

// lruStore evicts the least recently used entry beyond its capacity.
type lruStore struct {
	c *lru.Cache[cacheKey, []string]
}

func (s lruStore) get(k cacheKey) ([]string, bool) { return s.c.Get(k) }
func (s lruStore) put(k cacheKey, v []string)      { s.c.Add(k, v) }
func (s lruStore) len() int                        { return s.c.Len() }
func (s lruStore) purge()                          { s.c.Purge() }

// CacheOption configures a Cache.
type CacheOption func(*CacheOptions)

// CacheOptions holds Cache parameters.
type CacheOptions struct {
	// Capacity caps the number of entries; 0 means unbounded.
	Capacity int

	// Source computes misses. Defaults to Finder{}.
	Source Source

	err error
}

// DefaultCacheOptions returns an unbounded cache over Finder{}.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{Capacity: 0, Source: Finder{}}
}

// WithCapacity bounds the cache with LRU eviction.
//
//	n > 0: at most n entries
//	n == 0: unbounded
//	n < 0: ErrOptionViolation
func WithCapacity(n int) CacheOption {
	return func(o *CacheOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}

// WithSource sets the Source used to compute misses.
func WithSource(src Source) CacheOption {
	return func(o *CacheOptions) {
		if src != nil {
			o.Source = src
		}
	}
}

// CacheStats is a point-in-time snapshot of cache counters.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// Cache memoizes a Source keyed by (dictionary ID, word).
// It implements Source and is safe for concurrent use.
type Cache struct {
	src    Source
	store  store
	flight singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache builds a Cache. Returns ErrOptionViolation for bad options.
func NewCache(opts ...CacheOption) (*Cache, error) {
	o := DefaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &Cache{src: o.Source}
	if o.Capacity > 0 {
		l, err := lru.New[cacheKey, []string](o.Capacity)
		if err != nil {
			return nil, fmt.Errorf("neighbor: lru: %w", err)
		}
		c.store = lruStore{c: l}
	} else {
		c.store = &mapStore{m: make(map[cacheKey][]string)}
	}
	return c, nil
}

// Neighbors implements Source. A nil dictionary is passed through to the
// underlying Source uncached. The returned slice is the caller's own copy.
func (c *Cache) Neighbors(w string, dict dictionary.Dictionary) []string {
	if dict == nil {
		return c.src.Neighbors(w, dict)
	}
	k := cacheKey{dict: dict.ID(), word: w}
	if v, ok := c.store.get(k); ok {
		c.hits.Add(1)
		return slices.Clone(v)
	}

	v, _, _ := c.flight.Do(k.String(), func() (interface{}, error) {
		// a concurrent flight may have filled the entry already
		if v, ok := c.store.get(k); ok {
			c.hits.Add(1)
			return v, nil
		}
		c.misses.Add(1)
		nbrs := c.src.Neighbors(w, dict)
		c.store.put(k, nbrs)
		return nbrs, nil
	})
	// waiters of one flight share v
	return slices.Clone(v.([]string))
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.store.len(),
	}
}

// Purge drops every entry. Counters are kept.
func (c *Cache) Purge() { c.store.purge() }

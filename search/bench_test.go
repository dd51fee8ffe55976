package search_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/neighbor"
	"github.com/katalvlaran/wordladder/search"
)

// BenchmarkSearch_Grid measures each strategy inside the 32768-word
// component of five-letter words over a..h.
func BenchmarkSearch_Grid(b *testing.B) {
	d := disconnected50k()
	for _, s := range search.Strategies() {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = search.Search(s, "aaaaa", "hhhhh", d)
			}
		})
	}
}

// BenchmarkSearch_Cached shows the effect of a warm shared cache.
func BenchmarkSearch_Cached(b *testing.B) {
	d := disconnected50k()
	cache, _ := neighbor.NewCache()
	for _, s := range search.Strategies() {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = search.Search(s, "abcde", "hgfed", d, search.WithNeighborSource(cache))
			}
		})
	}
}

// BenchmarkSearch_Disconnected measures the bounded give-up path.
func BenchmarkSearch_Disconnected(b *testing.B) {
	d := disconnected50k()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Search(search.BreadthFirst, "aaaaa", "iiiii", d)
	}
}

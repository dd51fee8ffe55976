package hint_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/hint"
	"github.com/katalvlaran/wordladder/neighbor"
	"github.com/katalvlaran/wordladder/search"
)

func catDog() *dictionary.Set {
	return dictionary.NewSet("cat", "cot", "cog", "dog", "emu")
}

func TestNextMove(t *testing.T) {
	next, ok := hint.NextMove(search.Result{Outcome: search.Found, Path: []string{"cat", "cot", "cog"}})
	assert.True(t, ok)
	assert.Equal(t, "cot", next)

	_, ok = hint.NextMove(search.Result{Outcome: search.Found, Path: []string{"cat"}})
	assert.False(t, ok, "already at the target")

	_, ok = hint.NextMove(search.Result{Outcome: search.NoPath})
	assert.False(t, ok)
}

func TestCheckMove(t *testing.T) {
	d := catDog()
	assert.NoError(t, hint.CheckMove("cat", "cot", d))
	assert.ErrorIs(t, hint.CheckMove("cat", "cut", d), hint.ErrNotInDictionary)
	assert.ErrorIs(t, hint.CheckMove("cat", "dog", d), hint.ErrNotOneLetter)
	assert.ErrorIs(t, hint.CheckMove("cat", "cat", d), hint.ErrNotOneLetter)
	assert.ErrorIs(t, hint.CheckMove("cat", "cot", nil), hint.ErrNotInDictionary)
}

func TestMessage(t *testing.T) {
	cases := []struct {
		res  search.Result
		want string
	}{
		{search.Result{Outcome: search.Found, Strategy: search.AStar, Path: []string{"cat", "cot", "cog"}},
			"Hint (A*): next suggested move is 'cot' (2 moves left)"},
		{search.Result{Outcome: search.Found, Path: []string{"cat"}}, "You are already at the target."},
		{search.Result{Outcome: search.NoPath}, "No valid path found!"},
		{search.Result{Outcome: search.Timeout, Elapsed: 5*time.Second + 123456}, "No hint available: search timed out after 5s."},
		{search.Result{Outcome: search.IterationLimit, Iterations: 10000}, "No hint available: search gave up after 10000 steps."},
		{search.Result{Outcome: search.Canceled}, "No hint available: search canceled."},
		{search.Result{}, "No hint available."},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, hint.Message(c.res))
	}
}

func TestAdvisor_Hint(t *testing.T) {
	a, err := hint.NewAdvisor(search.BreadthFirst)
	require.NoError(t, err)
	d := catDog()

	h, err := a.Hint("cat", "dog", d)
	require.NoError(t, err)
	assert.True(t, h.OK)
	assert.Equal(t, "cot", h.Next)
	assert.Equal(t, "Hint (BFS): next suggested move is 'cot' (3 moves left)", h.Message())

	// following the hint moves one step closer
	h, err = a.Hint(h.Next, "dog", d)
	require.NoError(t, err)
	assert.Equal(t, "cog", h.Next)
	assert.Positive(t, a.Cache().Stats().Hits, "second hint reuses cached neighbors")

	h, err = a.Hint("cat", "emu", d)
	require.NoError(t, err)
	assert.False(t, h.OK)
	assert.Equal(t, "No valid path found!", h.Message())

	_, err = a.Hint("cat", "dog", nil)
	assert.ErrorIs(t, err, search.ErrNilDictionary)
}

func TestNewAdvisor_Errors(t *testing.T) {
	_, err := hint.NewAdvisor(search.Strategy(9))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, err = hint.NewAdvisor(search.AStar, hint.WithSearchOptions(search.WithMaxIterations(-1)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestAdvisor_Compare(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cache, err := neighbor.NewCache(neighbor.WithCapacity(128))
	require.NoError(t, err)

	a, err := hint.NewAdvisor(search.AStar, hint.WithCache(cache), hint.WithLogger(logger))
	require.NoError(t, err)
	assert.Same(t, cache, a.Cache())

	cmp, err := a.Compare(context.Background(), "cat", "dog", catDog())
	require.NoError(t, err)
	require.Len(t, cmp.Results, 3)
	assert.NotEqual(t, uuid.Nil, cmp.RunID)
	for i, s := range search.Strategies() {
		assert.Equal(t, s, cmp.Results[i].Strategy)
		assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, cmp.Results[i].Path)
	}
	assert.True(t, cmp.Agree())
	best, ok := cmp.Fewest()
	assert.True(t, ok)
	assert.True(t, best.Found())

	logged := buf.String()
	assert.Equal(t, 3, strings.Count(logged, "comparison result"))
	assert.Contains(t, logged, cmp.RunID.String())
}

func TestAdvisor_CompareSubsetAndNotFound(t *testing.T) {
	a, err := hint.NewAdvisor(search.BreadthFirst)
	require.NoError(t, err)

	cmp, err := a.Compare(context.Background(), "cat", "emu", catDog(), search.UniformCost, search.BreadthFirst)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 2)
	assert.Equal(t, search.UniformCost, cmp.Results[0].Strategy)
	assert.True(t, cmp.Agree())
	_, ok := cmp.Fewest()
	assert.False(t, ok)

	_, err = a.Compare(context.Background(), "cat", "dog", nil)
	assert.ErrorIs(t, err, search.ErrNilDictionary)
}

func TestAdvisor_CompareCanceled(t *testing.T) {
	a, err := hint.NewAdvisor(search.BreadthFirst)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmp, err := a.Compare(ctx, "cat", "dog", catDog())
	require.NoError(t, err)
	for _, r := range cmp.Results {
		assert.Equal(t, search.Canceled, r.Outcome)
	}
}

func TestComparison_Disagree(t *testing.T) {
	cmp := hint.Comparison{Results: []search.Result{
		{Outcome: search.Found, Path: []string{"a", "b"}},
		{Outcome: search.IterationLimit},
	}}
	assert.False(t, cmp.Agree())
	assert.True(t, hint.Comparison{}.Agree())
}

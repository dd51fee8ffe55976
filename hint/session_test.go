package hint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/hint"
	"github.com/katalvlaran/wordladder/search"
)

func TestSession_PlayToWin(t *testing.T) {
	a, err := hint.NewAdvisor(search.BreadthFirst)
	require.NoError(t, err)
	s, err := a.NewSession("cat", "dog", catDog())
	require.NoError(t, err)

	assert.Equal(t, "cat", s.Current())
	assert.Zero(t, s.Moves())
	assert.False(t, s.Done())

	// rejected moves leave the session alone
	assert.ErrorIs(t, s.Move("cog"), hint.ErrNotOneLetter)
	assert.ErrorIs(t, s.Move("cut"), hint.ErrNotInDictionary)
	assert.Equal(t, "cat", s.Current())
	assert.Zero(t, s.Moves())

	h, err := s.Hint()
	require.NoError(t, err)
	require.True(t, h.OK)
	require.NoError(t, s.Move(h.Next))

	h, err = s.HintWith(search.AStar)
	require.NoError(t, err)
	assert.Equal(t, search.AStar, h.Result.Strategy)
	assert.Equal(t, "cog", h.Next)
	require.NoError(t, s.Move(h.Next))
	require.NoError(t, s.Move("dog"))

	assert.True(t, s.Done())
	assert.Equal(t, 3, s.Moves())
	assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, s.History())
	assert.ErrorIs(t, s.Move("cog"), hint.ErrGameOver)

	h, err = s.Hint()
	require.NoError(t, err)
	assert.Equal(t, "You are already at the target.", h.Message())
}

func TestSession_Detour(t *testing.T) {
	a, err := hint.NewAdvisor(search.UniformCost)
	require.NoError(t, err)
	s, err := a.NewSession("cat", "dog", dictionary.NewSet("cat", "cot", "cog", "dog", "hot"))
	require.NoError(t, err)

	for _, w := range []string{"cot", "hot", "cot", "cog", "dog"} {
		require.NoError(t, s.Move(w))
	}
	assert.True(t, s.Done())
	assert.Equal(t, 5, s.Moves(), "backtracking moves count")

	hist := s.History()
	hist[0] = "zzz"
	assert.Equal(t, "cat", s.History()[0], "History returns a copy")
}

func TestNewSession_Errors(t *testing.T) {
	a, err := hint.NewAdvisor(search.BreadthFirst)
	require.NoError(t, err)
	d := dictionary.NewSet("cat", "cot", "cold")

	_, err = a.NewSession("cat", "dog", d)
	assert.ErrorIs(t, err, hint.ErrNotInDictionary)
	_, err = a.NewSession("cat", "cold", d)
	assert.ErrorIs(t, err, hint.ErrLengthMismatch)
	_, err = a.NewSession("cat", "cot", nil)
	assert.ErrorIs(t, err, search.ErrNilDictionary)

	s, err := a.NewSession("cot", "cot", d)
	require.NoError(t, err)
	assert.True(t, s.Done(), "start == target is already won")
}

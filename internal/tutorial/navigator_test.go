package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultNavigator(t *testing.T) *Navigator {
	t.Helper()
	n, err := NewNavigator(DefaultSteps())
	require.NoError(t, err)
	return n
}

func TestNewNavigator_Validation(t *testing.T) {
	_, err := NewNavigator(nil)
	assert.Error(t, err)

	_, err = NewNavigator([]Step{{ID: "a"}, {ID: "a"}})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewNavigator([]Step{{ID: ""}})
	assert.Error(t, err)
}

func TestNavigator_StartsOnFirstStep(t *testing.T) {
	n := newDefaultNavigator(t)
	assert.Equal(t, 0, n.Index())
	assert.Equal(t, "intro", n.Current().ID)
	assert.False(t, n.HasPrevious())
	assert.True(t, n.HasNext())
}

func TestNavigator_PreviousAtFirstIsNoop(t *testing.T) {
	n := newDefaultNavigator(t)
	assert.False(t, n.Previous())
	assert.Equal(t, "intro", n.Current().ID)
}

func TestNavigator_NextAtLastIsNoop(t *testing.T) {
	n := newDefaultNavigator(t)
	for n.Next() {
	}
	assert.True(t, n.IsLast())
	assert.Equal(t, PlaygroundStepID, n.Current().ID)
	assert.False(t, n.Next())
	assert.Equal(t, PlaygroundStepID, n.Current().ID)
}

func TestNavigator_NextPreviousRoundTrip(t *testing.T) {
	n := newDefaultNavigator(t)
	require.True(t, n.Next())
	assert.Equal(t, "apikey", n.Current().ID)
	require.True(t, n.Previous())
	assert.Equal(t, "intro", n.Current().ID)
}

func TestNavigator_SelectStep(t *testing.T) {
	n := newDefaultNavigator(t)

	require.NoError(t, n.SelectStep("interface"))
	assert.Equal(t, 2, n.Index())

	err := n.SelectStep("nope")
	assert.ErrorIs(t, err, ErrUnknownStep)
	assert.Equal(t, "interface", n.Current().ID, "unknown id must not move the cursor")
}

func TestNavigator_SelectIndex(t *testing.T) {
	n := newDefaultNavigator(t)
	require.NoError(t, n.SelectIndex(3))
	assert.True(t, n.IsLast())

	assert.ErrorIs(t, n.SelectIndex(4), ErrUnknownStep)
	assert.ErrorIs(t, n.SelectIndex(-1), ErrUnknownStep)
	assert.Equal(t, 3, n.Index())
}

func TestNavigator_StepsIsACopy(t *testing.T) {
	n := newDefaultNavigator(t)
	steps := n.Steps()
	steps[0].Title = "changed"
	assert.NotEqual(t, "changed", n.Current().Title)
}

func TestDefaultSteps(t *testing.T) {
	steps := DefaultSteps()
	require.Len(t, steps, 4)
	assert.Equal(t, PlaygroundStepID, steps[len(steps)-1].ID)
	for _, s := range steps {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Content)
		assert.NotEmpty(t, s.Icon.Glyph())
	}

	n := newDefaultNavigator(t)
	s, ok := n.Lookup("apikey")
	require.True(t, ok)
	assert.Equal(t, IconKey, s.Icon)
}

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func priorityOf(ranks map[string]int) PriorityFunc {
	return func(modelID string) int { return ranks[modelID] }
}

func TestSelectPrefersNonParticipant(t *testing.T) {
	s := NewSelector(priorityOf(map[string]int{"alpha": 3, "beta": 2, "gamma": 1}))

	model, nonParticipant := s.Select([]string{"alpha", "beta", "gamma"}, []string{"alpha"})
	assert.Equal(t, "beta", model)
	assert.True(t, nonParticipant)
}

func TestSelectFallsBackToParticipant(t *testing.T) {
	s := NewSelector(priorityOf(map[string]int{"alpha": 1, "beta": 2}))

	model, nonParticipant := s.Select([]string{"alpha", "beta"}, []string{"alpha", "beta"})
	assert.Equal(t, "beta", model)
	assert.False(t, nonParticipant)
}

func TestSelectTieBreaksLexicographically(t *testing.T) {
	s := NewSelector(nil)

	// All equal priority — the lexicographically smallest non-participant wins,
	// regardless of candidate order.
	model, nonParticipant := s.Select([]string{"zeta", "mu", "kappa"}, nil)
	assert.Equal(t, "kappa", model)
	assert.True(t, nonParticipant)
}

func TestSelectIsDeterministic(t *testing.T) {
	s := NewSelector(priorityOf(map[string]int{"alpha": 2, "beta": 2, "gamma": 1}))

	first, _ := s.Select([]string{"gamma", "beta", "alpha"}, []string{"gamma"})
	for i := 0; i < 50; i++ {
		model, _ := s.Select([]string{"gamma", "beta", "alpha"}, []string{"gamma"})
		assert.Equal(t, first, model)
	}
	assert.Equal(t, "alpha", first)
}

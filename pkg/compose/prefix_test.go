package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapeline/pkg/compose"
	"tapeline/pkg/domain"
)

func twoState() *domain.Machine {
	m := domain.New()
	m.SetInitialState("0")
	m.SetAcceptState("1")
	m.SetTitle("two")
	m.AddTransitions([]domain.TransitionEntry{
		{
			From: domain.TapeState{State: "0", Symbol: 'a'},
			To:   domain.TapeReaction{Next: domain.TapeState{State: "1", Symbol: 'b'}, Move: domain.Right},
		},
		{
			From: domain.TapeState{State: "0", Symbol: 'b'},
			To:   domain.TapeReaction{Next: domain.TapeState{State: "0", Symbol: 'b'}, Move: domain.Left},
		},
	})
	return m
}

func TestPrefix_RewritesEveryLabel(t *testing.T) {
	m := twoState()
	p := compose.Prefix(m, "tag")

	assert.Equal(t, "[tag]0", p.InitialState())
	assert.Equal(t, "[tag]1", p.AcceptState())
	assert.Equal(t, "two", p.Title(), "title is not a state label")
	require.Equal(t, m.Len(), p.Len())

	r, ok := p.Lookup(domain.TapeState{State: "[tag]0", Symbol: 'a'})
	require.True(t, ok)
	assert.Equal(t, "[tag]1", r.Next.State)
	assert.Equal(t, domain.Symbol('b'), r.Next.Symbol, "symbols must be preserved")
	assert.Equal(t, domain.Right, r.Move, "directions must be preserved")

	// No unrenamed key survives.
	_, ok = p.Lookup(domain.TapeState{State: "0", Symbol: 'a'})
	assert.False(t, ok)
}

func TestPrefix_Injective(t *testing.T) {
	// Labels "0" and "1" must stay distinct, and the entry count must not
	// shrink through the rename.
	m := twoState()
	p := compose.Prefix(m, "x")
	assert.Equal(t, m.Len(), p.Len())
	assert.NotEqual(t, p.InitialState(), p.AcceptState())
}

func TestPrefix_DistinctTagsDisjoint(t *testing.T) {
	a := compose.Prefix(twoState(), "a")
	b := compose.Prefix(twoState(), "b")

	for key := range a.Transitions() {
		_, ok := b.Lookup(key)
		assert.False(t, ok, "key %v leaked across tags", key)
	}
}

func TestPrefix_DoesNotMutateOperand(t *testing.T) {
	m := twoState()
	_ = compose.Prefix(m, "tag")

	assert.Equal(t, "0", m.InitialState())
	_, ok := m.Lookup(domain.TapeState{State: "0", Symbol: 'a'})
	assert.True(t, ok)
}

func TestTransformStates_Identity(t *testing.T) {
	m := twoState()
	same := compose.TransformStates(m, func(s string) string { return s })

	assert.Equal(t, m.Transitions(), same.Transitions())
	assert.Equal(t, m.InitialState(), same.InitialState())
	assert.Equal(t, m.AcceptState(), same.AcceptState())
}

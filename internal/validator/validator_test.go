package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapeline/internal/validator"
	"tapeline/pkg/compose"
	"tapeline/pkg/domain"
	"tapeline/pkg/machines"
)

func TestCollisions(t *testing.T) {
	alphabet := domain.NewAlphabet("ab")

	// Two unrenamed move machines share every key.
	a := machines.MoveRight(1, alphabet, "a")
	b := machines.MoveRight(1, alphabet, "b")
	keys := validator.Collisions(a, b)
	assert.Len(t, keys, 2, "one collision per symbol")

	// After prefixing, nothing collides.
	keys = validator.Collisions(compose.Prefixed(a), compose.Prefixed(b))
	assert.Empty(t, keys)
}

func TestSpliceGaps(t *testing.T) {
	m := domain.New()
	m.SetInitialState("q0")
	m.SetAcceptState("acc")
	// Hold into accept on 'x' and 'y'; moving entry on 'z' is ignored.
	m.AddTransitions([]domain.TransitionEntry{
		{
			From: domain.TapeState{State: "q0", Symbol: 'x'},
			To:   domain.TapeReaction{Next: domain.TapeState{State: "acc", Symbol: 'x'}, Move: domain.Hold},
		},
		{
			From: domain.TapeState{State: "q0", Symbol: 'y'},
			To:   domain.TapeReaction{Next: domain.TapeState{State: "acc", Symbol: 'y'}, Move: domain.Hold},
		},
		{
			From: domain.TapeState{State: "q0", Symbol: 'z'},
			To:   domain.TapeReaction{Next: domain.TapeState{State: "acc", Symbol: 'z'}, Move: domain.Right},
		},
	})

	gaps := validator.SpliceGaps(m, domain.NewAlphabet("x"))
	assert.Equal(t, []domain.Symbol{'y'}, gaps)

	gaps = validator.SpliceGaps(m, domain.NewAlphabet("xy"))
	assert.Empty(t, gaps)
}

func TestUnreachable(t *testing.T) {
	m := domain.New()
	m.SetInitialState("q0")
	m.SetAcceptState("acc")
	m.AddTransitions([]domain.TransitionEntry{
		{
			From: domain.TapeState{State: "q0", Symbol: 'a'},
			To:   domain.TapeReaction{Next: domain.TapeState{State: "q1", Symbol: 'a'}, Move: domain.Right},
		},
		{
			From: domain.TapeState{State: "q1", Symbol: 'a'},
			To:   domain.TapeReaction{Next: domain.TapeState{State: "acc", Symbol: 'a'}, Move: domain.Hold},
		},
		// An island no path reaches.
		{
			From: domain.TapeState{State: "orphan", Symbol: 'a'},
			To:   domain.TapeReaction{Next: domain.TapeState{State: "orphan2", Symbol: 'a'}, Move: domain.Hold},
		},
	})

	assert.Equal(t, []string{"orphan", "orphan2"}, validator.Unreachable(m))
}

func TestUnreachable_CompositeIsClean(t *testing.T) {
	alphabet := domain.NewAlphabet("x_")
	m := compose.Multiconcat([]*domain.Machine{
		machines.MoveRight(1, alphabet, "a"),
		machines.MoveRight(1, alphabet, "b"),
	}, alphabet, "m")

	assert.Empty(t, validator.Unreachable(m))
}

func TestValidate(t *testing.T) {
	alphabet := domain.NewAlphabet("x_")
	require.NoError(t, validator.Validate(machines.MoveRight(1, alphabet, "ok")))

	bad := domain.New()
	bad.SetInitialState("")
	err := validator.Validate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty initial state")

	haltSource := domain.New()
	haltSource.AddTransition(
		domain.TapeState{State: domain.HaltState, Symbol: 'x'},
		domain.TapeReaction{Next: domain.TapeState{State: "q", Symbol: 'x'}, Move: domain.Hold},
	)
	err = validator.Validate(haltSource)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "halt state")
}

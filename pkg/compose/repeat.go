package compose

import "tapeline/pkg/domain"

// Mode selects the loop exit policy of Repeat.
type Mode int

const (
	// DoWhile keeps looping by default and exits only when the sentinel
	// is under the head at the check junction.
	DoWhile Mode = iota
	// DoUntil exits by default and keeps looping only on the sentinel.
	DoUntil
)

// Synthetic states introduced by Repeat. They live inside the composite's
// prefixed namespace boundary, so bodies cannot collide with them unless
// a body deliberately names a state "check" or "break" at top level after
// prefixing (not possible: prefixed labels always start with '[').
const (
	checkState = "check"
	breakState = "break"
)

// Repeat builds a loop around body. After each body run the composite
// lands on a synthetic check state; the symbol under the head there
// decides whether to run the body again or to exit to the synthetic break
// state, which is the composite's accept state.
//
// The dispatch is two-level: a blanket redirect over the whole alphabet
// installs the mode's default (continue for DoWhile, exit for DoUntil),
// then a single override transition for exactly the sentinel flips that
// default. The override is installed after the blanket redirect so the
// upsert leaves it standing; this ordering is load-bearing.
//
// If the body accepts exactly when the sentinel shows up at the k-th
// check, a DoWhile composite reaches break after exactly k body runs.
// A sentinel that never appears loops forever; bounding runs is the
// session's job, not the algebra's.
func Repeat(body *domain.Machine, mode Mode, sentinel domain.Symbol, alphabet domain.Alphabet, title string) *domain.Machine {
	result := Multiconcat([]*domain.Machine{body}, alphabet, title)

	result.RedirectState(result.AcceptState(), checkState, alphabet)

	blanketTarget := breakState
	overrideTarget := result.InitialState()
	if mode == DoWhile {
		blanketTarget = result.InitialState()
		overrideTarget = breakState
	}

	result.RedirectState(checkState, blanketTarget, alphabet)
	result.AddTransition(
		domain.TapeState{State: checkState, Symbol: sentinel},
		domain.TapeReaction{
			Next: domain.TapeState{State: overrideTarget, Symbol: sentinel},
			Move: domain.Hold,
		},
	)
	result.SetAcceptState(breakState)
	return result
}

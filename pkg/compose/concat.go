package compose

import "tapeline/pkg/domain"

// Concat sequentially composes two machines: run first; upon reaching its
// accept state, hand control to second's initial state without consuming
// the symbol under the head; finish when second accepts.
//
// Both operands are prefixed by their titles before merging, so their
// state spaces cannot collide as long as the titles differ. The splice is
// a Hold-redirect over the given alphabet: any symbol that can be under
// the head when first accepts but is missing from the alphabet leaves the
// composite stuck in Reject at the boundary. That obligation is not
// checked here; see internal/validator.
func Concat(first, second *domain.Machine, alphabet domain.Alphabet, title string) *domain.Machine {
	a := Prefixed(first)
	b := Prefixed(second)

	result := domain.NewFromTable(a.Transitions())
	result.SetInitialState(a.InitialState())
	result.RedirectState(a.AcceptState(), b.InitialState(), alphabet)
	result.AddTable(b.Transitions())
	result.SetAcceptState(b.AcceptState())
	result.SetTitle(title)
	return result
}

// Multiconcat left-folds sequential composition across machines in list
// order: each machine runs after the previous one. Each contributor is
// prefixed once by its own title (so titles must be distinct), which keeps
// state labels flat instead of nesting prefixes per fold step; under step
// the result behaves identically to folding Concat.
//
// An empty list yields a fresh default machine carrying the title.
func Multiconcat(machines []*domain.Machine, alphabet domain.Alphabet, title string) *domain.Machine {
	if len(machines) == 0 {
		result := domain.New()
		result.SetTitle(title)
		return result
	}

	result := Prefixed(machines[0])
	for _, m := range machines[1:] {
		next := Prefixed(m)
		result.RedirectState(result.AcceptState(), next.InitialState(), alphabet)
		result.AddTable(next.Transitions())
		result.SetAcceptState(next.AcceptState())
	}
	result.SetTitle(title)
	return result
}

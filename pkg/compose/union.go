package compose

import "tapeline/pkg/domain"

// Union superimposes the transition tables of two machines, keeping the
// first machine's initial and accept labels. It implements "try
// alternative 1, or alternative 2" by literal table merging: the caller
// must have arranged for the machines to share an entry state or to have
// disjoint (state, symbol) keys. On a key collision the second machine's
// entry silently overwrites the first's; no detection happens here (see
// internal/validator.Collisions).
func Union(first, second *domain.Machine, title string) *domain.Machine {
	result := first.Clone()
	result.AddTable(second.Transitions())
	result.SetTitle(title)
	return result
}

// Multiunion folds Union across machines in list order; later machines
// win colliding keys. An empty list yields a fresh default machine
// carrying the title.
func Multiunion(machines []*domain.Machine, title string) *domain.Machine {
	if len(machines) == 0 {
		result := domain.New()
		result.SetTitle(title)
		return result
	}

	result := machines[0].Clone()
	for _, m := range machines[1:] {
		result.AddTable(m.Transitions())
	}
	result.SetTitle(title)
	return result
}

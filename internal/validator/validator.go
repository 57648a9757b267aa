// Package validator provides opt-in construction-time checks for the
// composition contracts the algebra itself leaves unchecked: union key
// collisions, splice alphabet coverage and state reachability.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"tapeline/pkg/domain"
)

// Collisions returns the (state, symbol) keys defined by more than one of
// the given machines. A non-empty result means a Union/Multiunion over
// these machines would silently overwrite entries.
func Collisions(machines ...*domain.Machine) []domain.TapeState {
	seen := make(map[domain.TapeState]int)
	for _, m := range machines {
		for key := range m.Transitions() {
			seen[key]++
		}
	}

	var out []domain.TapeState
	for key, count := range seen {
		if count > 1 {
			out = append(out, key)
		}
	}
	sortKeys(out)
	return out
}

// SpliceGaps returns the symbols statically known to be under the head
// when m accepts that alphabet does not cover. Concat splicing m with
// that alphabet would strand the composite in Reject on those symbols.
//
// Only Hold-transitions into the accept state are considered: after a
// moving transition the symbol under the head is a neighboring cell and
// cannot be determined statically.
func SpliceGaps(m *domain.Machine, alphabet domain.Alphabet) []domain.Symbol {
	gaps := make(map[domain.Symbol]struct{})
	for _, to := range m.Transitions() {
		if to.Next.State != m.AcceptState() || to.Move != domain.Hold {
			continue
		}
		if !alphabet.Contains(to.Next.Symbol) {
			gaps[to.Next.Symbol] = struct{}{}
		}
	}

	out := make([]domain.Symbol, 0, len(gaps))
	for sym := range gaps {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Unreachable returns the states that no sequence of transitions can
// reach from the initial state, sorted by label. The accept and halt
// labels are excluded: they carry no outgoing transitions by design and
// being absent from the table does not make them defects.
func Unreachable(m *domain.Machine) []string {
	table := m.Transitions()

	states := make(map[string]bool)
	for from, to := range table {
		states[from.State] = false
		states[to.Next.State] = false
	}
	states[m.InitialState()] = false

	visited := make(map[string]bool)
	queue := []string{m.InitialState()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		for from, to := range table {
			if from.State != current {
				continue
			}
			if !visited[to.Next.State] {
				queue = append(queue, to.Next.State)
			}
		}
	}

	var out []string
	for state := range states {
		if visited[state] || state == m.AcceptState() || state == domain.HaltState {
			continue
		}
		out = append(out, state)
	}
	sort.Strings(out)
	return out
}

// Validate performs structural sanity checks: nonempty initial and accept
// labels, and no outgoing transitions from the halt label (a well-formed
// machine never leaves a terminal state).
func Validate(m *domain.Machine) error {
	var problems []string

	if m.InitialState() == "" {
		problems = append(problems, "empty initial state")
	}
	if m.AcceptState() == "" {
		problems = append(problems, "empty accept state")
	}
	for from := range m.Transitions() {
		if from.State == domain.HaltState {
			problems = append(problems, fmt.Sprintf("halt state %q has an outgoing transition on %q", domain.HaltState, from.Symbol))
		}
		if from.State == m.AcceptState() {
			problems = append(problems, fmt.Sprintf("accept state %q has an outgoing transition on %q", m.AcceptState(), from.Symbol))
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("invalid machine: %s", strings.Join(problems, "; "))
	}
	return nil
}

func sortKeys(keys []domain.TapeState) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].Symbol < keys[j].Symbol
	})
}

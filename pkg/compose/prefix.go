package compose

import "tapeline/pkg/domain"

// TransformStates rebuilds m with every state label (transition keys,
// reaction targets, the recorded initial and accept states) passed
// through rename. Symbols, directions and the title are preserved.
// rename must be injective or distinct states will be conflated.
func TransformStates(m *domain.Machine, rename func(string) string) *domain.Machine {
	result := domain.New()
	for from, to := range m.Transitions() {
		result.AddTransition(
			domain.TapeState{State: rename(from.State), Symbol: from.Symbol},
			domain.TapeReaction{
				Next: domain.TapeState{State: rename(to.Next.State), Symbol: to.Next.Symbol},
				Move: to.Move,
			},
		)
	}
	result.SetInitialState(rename(m.InitialState()))
	result.SetAcceptState(rename(m.AcceptState()))
	result.SetTitle(m.Title())
	return result
}

// Prefix renames every state label of m to "[tag]"+label. The mapping is
// injective and total, and two machines prefixed with distinct tags can
// never collide.
func Prefix(m *domain.Machine, tag string) *domain.Machine {
	return TransformStates(m, func(state string) string {
		return "[" + tag + "]" + state
	})
}

// Prefixed prefixes m by its own title. The composition operators use it
// to give each contributing machine its own namespace; machines combined
// this way must carry distinct titles (caller contract).
func Prefixed(m *domain.Machine) *domain.Machine {
	return Prefix(m, m.Title())
}

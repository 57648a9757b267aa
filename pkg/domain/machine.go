package domain

// TapeState is the left-hand key of a transition: a control state paired
// with the symbol currently under the head.
type TapeState struct {
	State  string
	Symbol Symbol
}

// TapeReaction is the right-hand side of a transition: the written symbol,
// the target state, and the head movement.
type TapeReaction struct {
	Next TapeState
	Move Direction
}

// TransitionEntry is one (key, reaction) pair, used for bulk insertion.
type TransitionEntry struct {
	From TapeState
	To   TapeReaction
}

// TransitionTable maps tape states to reactions. Keys are unique by
// construction; the absence of a key is the first-class "no rule" outcome
// that makes a step Reject, not an error.
type TransitionTable map[TapeState]TapeReaction

// Clone returns an independent copy of the table.
func (t TransitionTable) Clone() TransitionTable {
	out := make(TransitionTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// HaltState is the reserved halt label. It is distinct from ordinary
// combinator-chosen states and is never renamed specially: landing on it
// halts the machine.
const HaltState = "H"

// Defaults for a freshly constructed machine.
const (
	DefaultInitialState = "qStart"
	DefaultAcceptState  = "Y"
	DefaultTitle        = "MyMachine"
)

// Machine is a deterministic single-tape automaton: a transition table
// plus its initial and accept state labels and a human-readable title.
//
// A Machine is mutated only while being built (by a combinator or a
// decoder). Once handed out it must be treated as an immutable value;
// the composition operators in pkg/compose never modify their operands.
type Machine struct {
	transitions TransitionTable
	initial     string
	accept      string
	title       string
}

// New creates an empty machine with the default labels.
func New() *Machine {
	return &Machine{
		transitions: make(TransitionTable),
		initial:     DefaultInitialState,
		accept:      DefaultAcceptState,
		title:       DefaultTitle,
	}
}

// NewFromTable creates a machine with the default labels and a copy of
// the given transitions.
func NewFromTable(table TransitionTable) *Machine {
	m := New()
	m.transitions = table.Clone()
	return m
}

// AddTransition upserts one transition. A later call for the same key
// overwrites the earlier reaction.
func (m *Machine) AddTransition(from TapeState, to TapeReaction) {
	m.transitions[from] = to
}

// AddTransitions upserts entries in slice order; on duplicate keys the
// last entry wins.
func (m *Machine) AddTransitions(entries []TransitionEntry) {
	for _, e := range entries {
		m.transitions[e.From] = e.To
	}
}

// AddTable upsert-merges a whole table into the machine.
func (m *Machine) AddTable(table TransitionTable) {
	for k, v := range table {
		m.transitions[k] = v
	}
}

// RedirectState installs, for every symbol of the alphabet, a transition
// (from, symbol) -> ((to, symbol), Hold). It splices control flow from one
// state to another without consuming the symbol under the head.
func (m *Machine) RedirectState(from, to string, alphabet Alphabet) {
	for sym := range alphabet {
		m.AddTransition(
			TapeState{State: from, Symbol: sym},
			TapeReaction{Next: TapeState{State: to, Symbol: sym}, Move: Hold},
		)
	}
}

// SetInitialState sets the initial state label.
func (m *Machine) SetInitialState(name string) { m.initial = name }

// SetAcceptState sets the accept state label.
func (m *Machine) SetAcceptState(name string) { m.accept = name }

// SetTitle sets the machine title.
func (m *Machine) SetTitle(title string) { m.title = title }

// InitialState returns the initial state label.
func (m *Machine) InitialState() string { return m.initial }

// AcceptState returns the accept state label.
func (m *Machine) AcceptState() string { return m.accept }

// Title returns the machine title.
func (m *Machine) Title() string { return m.title }

// Lookup returns the reaction for a tape state, and whether one exists.
func (m *Machine) Lookup(from TapeState) (TapeReaction, bool) {
	r, ok := m.transitions[from]
	return r, ok
}

// Transitions returns a copy of the transition table.
func (m *Machine) Transitions() TransitionTable {
	return m.transitions.Clone()
}

// Len returns the number of transitions.
func (m *Machine) Len() int { return len(m.transitions) }

// Clone returns an independent copy of the machine.
func (m *Machine) Clone() *Machine {
	return &Machine{
		transitions: m.transitions.Clone(),
		initial:     m.initial,
		accept:      m.accept,
		title:       m.title,
	}
}

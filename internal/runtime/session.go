// Package runtime implements the stepping interpreter: a two-directional
// growable tape and the session that executes one machine over it.
package runtime

import (
	"context"
	"log/slog"
	"strings"

	"tapeline/internal/logging"
	"tapeline/pkg/domain"
)

// Session is one execution of a machine over a private tape. It is owned
// exclusively by its creator and must not be shared across goroutines;
// the machine itself is only read, so any number of sessions may execute
// the same machine concurrently.
type Session struct {
	machine *domain.Machine

	current string
	head    int
	// left holds cells at negative addresses, reversed: left[0] is
	// address -1. right holds addresses >= 0.
	left  []domain.Symbol
	right []domain.Symbol
	steps int

	limit  int
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithStepLimit sets the step ceiling enforced by Run. Zero means unbounded.
func WithStepLimit(limit int) Option {
	return func(s *Session) { s.limit = limit }
}

// WithHooks registers lifecycle hooks fired by Run.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) { s.hooks = hooks }
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session for the machine with an empty tape.
// Call LoadInput before stepping.
func NewSession(m *domain.Machine, opts ...Option) *Session {
	s := &Session{
		machine: m,
		current: m.InitialState(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.LoadInput("")
	return s
}

// LoadInput resets the session: current state back to the machine's
// initial state, head to address 0, left side empty, right side holding
// the characters of input (or a single blank cell when input is empty).
// This is the only way to (re)start a session.
func (s *Session) LoadInput(input string) {
	s.current = s.machine.InitialState()
	s.head = 0
	s.steps = 0
	s.left = nil

	if input == "" {
		s.right = []domain.Symbol{domain.Blank}
		return
	}
	s.right = make([]domain.Symbol, 0, len(input))
	for _, r := range input {
		s.right = append(s.right, domain.Symbol(r))
	}
}

// cell returns a pointer to the tape cell at the given address.
func (s *Session) cell(idx int) *domain.Symbol {
	if idx >= 0 {
		return &s.right[idx]
	}
	return &s.left[-idx-1]
}

// Step executes one transition.
//
// A missing table entry returns Reject without mutating anything. On a
// hit, the reaction symbol is written at the current cell, the state is
// updated and the head shifted, growing the crossed tape side by one
// blank cell if needed. The returned status is Halt if the new state is
// the reserved halt label, Accept if it is the accept state, and Running
// otherwise.
//
// Callers must stop stepping once a terminal status is returned;
// behavior past a terminal state depends entirely on whether that state
// happens to have outgoing transitions.
func (s *Session) Step() domain.Status {
	cell := s.cell(s.head)

	reaction, ok := s.machine.Lookup(domain.TapeState{State: s.current, Symbol: *cell})
	if !ok {
		return domain.Reject
	}

	*cell = reaction.Next.Symbol
	s.current = reaction.Next.State
	s.head += reaction.Move.Offset()
	s.steps++

	if s.head == len(s.right) {
		s.right = append(s.right, domain.Blank)
	}
	if -s.head-1 == len(s.left) {
		s.left = append(s.left, domain.Blank)
	}

	switch s.current {
	case domain.HaltState:
		return domain.Halt
	case s.machine.AcceptState():
		return domain.Accept
	}
	return domain.Running
}

// Run steps until a terminal status, firing hooks along the way. It stops
// early with an error when ctx is cancelled or the configured step ceiling
// is exceeded (domain.ErrStepLimit). A machine whose loop sentinel never
// appears runs forever without a limit; that is the caller's contract.
func (s *Session) Run(ctx context.Context) (domain.Status, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Running, err
		}
		if s.limit > 0 && s.steps >= s.limit {
			s.logger.Warn("run aborted", "steps", s.steps, "limit", s.limit)
			return domain.Running, domain.ErrStepLimit
		}

		status := s.Step()
		event := &domain.StepEvent{
			State:     s.current,
			HeadIndex: s.head,
			Status:    status,
			Steps:     s.steps,
		}
		if s.hooks.OnStep != nil {
			s.hooks.OnStep(ctx, event)
		}
		if status.Terminal() {
			if s.hooks.OnTerminal != nil {
				s.hooks.OnTerminal(ctx, event)
			}
			s.logger.Debug("run finished", "status", status.String(), "steps", s.steps)
			return status, nil
		}
	}
}

// Tape renders the full tape, reverse(left) + right. Non-destructive.
func (s *Session) Tape() string {
	var b strings.Builder
	b.Grow(len(s.left) + len(s.right))
	for i := len(s.left) - 1; i >= 0; i-- {
		b.WriteRune(rune(s.left[i]))
	}
	for _, sym := range s.right {
		b.WriteRune(rune(sym))
	}
	return b.String()
}

// Head renders a marker line locating the head within the Tape() string,
// followed by the current state name.
func (s *Session) Head() string {
	return strings.Repeat("_", len(s.left)+s.head) + "v" +
		strings.Repeat("_", len(s.right)-s.head-1) +
		" (" + s.current + ")"
}

// State returns the current control state label.
func (s *Session) State() string { return s.current }

// HeadIndex returns the signed head address.
func (s *Session) HeadIndex() int { return s.head }

// Steps returns the number of steps taken since the last LoadInput.
func (s *Session) Steps() int { return s.steps }

// Snapshot captures the session as a serializable SessionState. The
// status field is left as Running; callers that just observed a terminal
// status should set it themselves.
func (s *Session) Snapshot() *domain.SessionState {
	left := make([]rune, len(s.left))
	for i, sym := range s.left {
		left[i] = rune(sym)
	}
	right := make([]rune, len(s.right))
	for i, sym := range s.right {
		right[i] = rune(sym)
	}
	return &domain.SessionState{
		CurrentState: s.current,
		HeadIndex:    s.head,
		Left:         string(left),
		Right:        string(right),
		Steps:        s.steps,
	}
}

// Restore rebuilds a session from a snapshot taken against the same
// machine. The snapshot's status is not re-derived; stepping continues
// from the recorded position.
func Restore(m *domain.Machine, snap *domain.SessionState, opts ...Option) *Session {
	s := NewSession(m, opts...)
	s.current = snap.CurrentState
	s.head = snap.HeadIndex
	s.steps = snap.Steps
	s.left = make([]domain.Symbol, 0, len(snap.Left))
	for _, r := range snap.Left {
		s.left = append(s.left, domain.Symbol(r))
	}
	s.right = make([]domain.Symbol, 0, len(snap.Right))
	for _, r := range snap.Right {
		s.right = append(s.right, domain.Symbol(r))
	}
	return s
}

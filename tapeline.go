// Package tapeline is the high-level entry point for the library.
// It wraps the internal runtime behind an Engine that runs a single
// machine, optionally persisting long-lived sessions through a store.
package tapeline

import (
	"context"
	"fmt"
	"log/slog"

	"tapeline/internal/logging"
	"tapeline/internal/runtime"
	"tapeline/pkg/codec"
	"tapeline/pkg/domain"
	"tapeline/pkg/ports"
)

// Engine executes one machine. One-shot execution goes through Run;
// resumable execution goes through Start, StepSession and End, backed by
// the configured session store.
type Engine struct {
	machine *domain.Machine
	store   ports.SessionStore
	limit   int
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects the session store used by Start, StepSession,
// Session and End. Without one those operations return an error.
func WithStore(store ports.SessionStore) Option {
	return func(e *Engine) { e.store = store }
}

// WithStepLimit caps the number of steps any run may take.
// Zero means unbounded.
func WithStepLimit(limit int) Option {
	return func(e *Engine) { e.limit = limit }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) { e.hooks = hooks }
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New initializes an Engine for the given machine.
func New(m *domain.Machine, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("machine is required")
	}
	eng := &Engine{
		machine: m,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.logger = eng.logger.With("machine", m.Title())
	return eng, nil
}

// Machine returns the machine the engine executes.
func (e *Engine) Machine() *domain.Machine { return e.machine }

// Describe returns the machine's textual encoding.
func (e *Engine) Describe() string {
	return codec.EncodeString(e.machine)
}

func (e *Engine) sessionOpts() []runtime.Option {
	return []runtime.Option{
		runtime.WithStepLimit(e.limit),
		runtime.WithHooks(e.hooks),
		runtime.WithLogger(e.logger),
	}
}

// Run executes the machine over input until a terminal status and
// returns the final snapshot. The session is not persisted.
func (e *Engine) Run(ctx context.Context, input string) (*domain.SessionState, error) {
	return e.run(ctx, input, e.limit)
}

// RunWithLimit is Run with the step ceiling overridden for this call.
// Zero means unbounded regardless of the engine's configured limit.
func (e *Engine) RunWithLimit(ctx context.Context, input string, limit int) (*domain.SessionState, error) {
	return e.run(ctx, input, limit)
}

func (e *Engine) run(ctx context.Context, input string, limit int) (*domain.SessionState, error) {
	session := runtime.NewSession(e.machine,
		runtime.WithStepLimit(limit),
		runtime.WithHooks(e.hooks),
		runtime.WithLogger(e.logger),
	)
	session.LoadInput(input)

	status, err := session.Run(ctx)
	if err != nil {
		return nil, err
	}

	snap := session.Snapshot()
	snap.Status = status
	return snap, nil
}

// Start opens a persistent session with the given input loaded and the
// machine positioned at its initial state. Nothing is executed yet.
func (e *Engine) Start(ctx context.Context, sessionID, input string) (*domain.SessionState, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no session store configured")
	}

	session := runtime.NewSession(e.machine, e.sessionOpts()...)
	session.LoadInput(input)

	snap := session.Snapshot()
	snap.ID = sessionID
	if err := e.store.Save(ctx, sessionID, snap); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	e.logger.Debug("session started", "session", sessionID)
	return snap, nil
}

// StepSession loads a persistent session, executes one transition and
// saves the result. Stepping a session that already reached a terminal
// status returns the stored snapshot unchanged.
func (e *Engine) StepSession(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no session store configured")
	}

	snap, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if snap.Status.Terminal() {
		return snap, nil
	}

	session := runtime.Restore(e.machine, snap, e.sessionOpts()...)
	status := session.Step()

	next := session.Snapshot()
	next.ID = sessionID
	next.Status = status
	if err := e.store.Save(ctx, sessionID, next); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return next, nil
}

// Session returns the stored snapshot for sessionID.
func (e *Engine) Session(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no session store configured")
	}
	return e.store.Load(ctx, sessionID)
}

// End deletes a persistent session.
func (e *Engine) End(ctx context.Context, sessionID string) error {
	if e.store == nil {
		return fmt.Errorf("no session store configured")
	}
	if err := e.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	e.logger.Debug("session ended", "session", sessionID)
	return nil
}

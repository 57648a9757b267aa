package domain

import "context"

// StepEvent describes one executed (or attempted) step.
type StepEvent struct {
	// State is the control state after the step.
	State string `json:"state"`
	// HeadIndex is the head position after the step.
	HeadIndex int `json:"head_index"`
	// Status is the outcome of the step.
	Status Status `json:"status"`
	// Steps is the total number of steps taken in the session so far.
	Steps int `json:"steps"`
}

// LifecycleHooks defines callbacks for session observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	// OnStep fires after every step, terminal or not.
	OnStep func(context.Context, *StepEvent)
	// OnTerminal fires once, when a run reaches a terminal status.
	OnTerminal func(context.Context, *StepEvent)
}

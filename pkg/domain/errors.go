package domain

import "errors"

// ErrMachineFormat is returned when a textual machine description is
// malformed. Decoding never yields a partial machine.
var ErrMachineFormat = errors.New("invalid machine description format")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrStepLimit is returned when a run exceeds its configured step ceiling.
var ErrStepLimit = errors.New("step limit exceeded")

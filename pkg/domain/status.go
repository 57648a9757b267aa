package domain

import "fmt"

// Status is the outcome of a single execution step.
//
// Running is the only non-terminal status. Accept and Halt are reached by
// landing on the respective labeled state; Reject is reached when no rule
// exists for the current (state, symbol) pair. Reject is the machine's
// designed way of refusing an input, not a software fault.
type Status int

const (
	Running Status = iota
	Accept
	Reject
	Halt
)

// Terminal reports whether the status ends the run.
func (s Status) Terminal() bool {
	return s != Running
}

// Message returns the fixed user-facing message for a terminal status,
// or the empty string for Running.
func (s Status) Message() string {
	switch s {
	case Accept:
		return "Machine accepted."
	case Reject:
		return "Machine rejected."
	case Halt:
		return "Machine halted."
	}
	return ""
}

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case Halt:
		return "halt"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalJSON encodes the status as its string name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a status from its string name.
func (s *Status) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"running"`:
		*s = Running
	case `"accept"`:
		*s = Accept
	case `"reject"`:
		*s = Reject
	case `"halt"`:
		*s = Halt
	default:
		return fmt.Errorf("domain: unknown status %s", data)
	}
	return nil
}

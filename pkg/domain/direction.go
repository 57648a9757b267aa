package domain

import "fmt"

// Direction is the head movement caused by a transition.
type Direction int

const (
	Left Direction = iota
	Right
	Hold
)

// Offset returns the head index delta for the direction.
func (d Direction) Offset() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	case Hold:
		return 0
	}
	panic(fmt.Sprintf("domain: invalid direction %d", int(d)))
}

// Specifier returns the single-character encoding used by the text format.
func (d Direction) Specifier() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Hold:
		return "-"
	}
	panic(fmt.Sprintf("domain: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Hold:
		return "hold"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseSpecifier converts a text-format direction specifier back to a
// Direction.
func ParseSpecifier(spec string) (Direction, error) {
	switch spec {
	case "<":
		return Left, nil
	case ">":
		return Right, nil
	case "-":
		return Hold, nil
	}
	return 0, fmt.Errorf("%w: unknown direction specifier %q", ErrMachineFormat, spec)
}

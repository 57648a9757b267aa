// Package codec implements the textual machine description format.
//
// A description starts with two header lines, "init: <state>" and
// "accept: <state>". Every transition then occupies two consecutive
// lines: "state_from,symbol_from" followed by
// "state_to,symbol_to,direction" where direction is one of "<", ">",
// "-" for Left, Right, Hold. Blank lines and lines starting with "//"
// are skipped between transition pairs. Titles are not serialized.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"tapeline/pkg/domain"
)

// Encode writes the textual description of m. Transitions are emitted in
// (state, symbol) order so the output is deterministic and diffable.
func Encode(w io.Writer, m *domain.Machine) error {
	if _, err := fmt.Fprintf(w, "init: %s\naccept: %s\n\n", m.InitialState(), m.AcceptState()); err != nil {
		return err
	}

	table := m.Transitions()
	keys := make([]domain.TapeState, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].Symbol < keys[j].Symbol
	})

	for _, from := range keys {
		to := table[from]
		_, err := fmt.Fprintf(w, "%s,%c\n%s,%c,%s\n\n",
			from.State, from.Symbol,
			to.Next.State, to.Next.Symbol, to.Move.Specifier())
		if err != nil {
			return err
		}
	}
	return nil
}

// EncodeString renders m as a description string.
func EncodeString(m *domain.Machine) string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = Encode(&b, m)
	return b.String()
}

// Decode parses a textual description into a machine. It is strict: any
// malformed header, pair grouping or direction specifier returns an error
// wrapping domain.ErrMachineFormat and no machine at all.
func Decode(r io.Reader) (*domain.Machine, error) {
	scanner := bufio.NewScanner(r)
	m := domain.New()

	initial, err := headerValue(scanner, "init")
	if err != nil {
		return nil, err
	}
	m.SetInitialState(initial)

	accept, err := headerValue(scanner, "accept")
	if err != nil {
		return nil, err
	}
	m.SetAcceptState(accept)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		from, err := parseKey(line)
		if err != nil {
			return nil, err
		}

		// The reaction must be on the immediately following line; a blank
		// or missing line here is a grouping error, not a separator.
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: transition %q has no reaction line", domain.ErrMachineFormat, line)
		}
		to, err := parseReaction(scanner.Text())
		if err != nil {
			return nil, err
		}

		m.AddTransition(from, to)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading machine description: %w", err)
	}

	return m, nil
}

// DecodeString parses a description string.
func DecodeString(s string) (*domain.Machine, error) {
	return Decode(strings.NewReader(s))
}

func headerValue(scanner *bufio.Scanner, key string) (string, error) {
	if !scanner.Scan() {
		return "", fmt.Errorf("%w: missing %q header", domain.ErrMachineFormat, key)
	}
	line := scanner.Text()
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != key {
		return "", fmt.Errorf("%w: expected %q header, got %q", domain.ErrMachineFormat, key, line)
	}
	value := strings.TrimSpace(parts[1])
	if value == "" {
		return "", fmt.Errorf("%w: empty %q header", domain.ErrMachineFormat, key)
	}
	return value, nil
}

func parseKey(line string) (domain.TapeState, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return domain.TapeState{}, fmt.Errorf("%w: bad transition key %q", domain.ErrMachineFormat, line)
	}
	sym, err := parseSymbol(parts[1], line)
	if err != nil {
		return domain.TapeState{}, err
	}
	return domain.TapeState{State: parts[0], Symbol: sym}, nil
}

func parseReaction(line string) (domain.TapeReaction, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return domain.TapeReaction{}, fmt.Errorf("%w: bad reaction %q", domain.ErrMachineFormat, line)
	}
	sym, err := parseSymbol(parts[1], line)
	if err != nil {
		return domain.TapeReaction{}, err
	}
	dir, err := domain.ParseSpecifier(parts[2])
	if err != nil {
		return domain.TapeReaction{}, err
	}
	return domain.TapeReaction{
		Next: domain.TapeState{State: parts[0], Symbol: sym},
		Move: dir,
	}, nil
}

func parseSymbol(field, line string) (domain.Symbol, error) {
	runes := []rune(field)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: symbol must be one character in %q", domain.ErrMachineFormat, line)
	}
	return domain.Symbol(runes[0]), nil
}

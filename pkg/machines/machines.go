// Package machines provides the primitive machine builders the
// composition algebra works with: move the head N cells, scan for a
// symbol, consume an expected symbol. Each builder returns a small,
// self-contained machine ready to be renamed and combined with
// pkg/compose.
package machines

import (
	"strconv"

	"tapeline/pkg/domain"
)

// Move builds a machine that shifts the head n cells in the given
// direction, leaving every visited symbol unchanged. Its states are
// numbered "0"..."n-1"; the n-th transition lands directly on the accept
// state, so the machine accepts after exactly n steps with the head
// displaced by n.
func Move(n int, dir domain.Direction, alphabet domain.Alphabet, title string) *domain.Machine {
	m := domain.New()
	m.SetInitialState("0")
	m.SetTitle(title)

	for sym := range alphabet {
		for i := 0; i < n; i++ {
			next := strconv.Itoa(i + 1)
			if i == n-1 {
				next = m.AcceptState()
			}
			m.AddTransition(
				domain.TapeState{State: strconv.Itoa(i), Symbol: sym},
				domain.TapeReaction{Next: domain.TapeState{State: next, Symbol: sym}, Move: dir},
			)
		}
	}
	return m
}

// MoveRight builds a machine moving the head n cells to the right.
func MoveRight(n int, alphabet domain.Alphabet, title string) *domain.Machine {
	return Move(n, domain.Right, alphabet, title)
}

// MoveLeft builds a machine moving the head n cells to the left.
func MoveLeft(n int, alphabet domain.Alphabet, title string) *domain.Machine {
	return Move(n, domain.Left, alphabet, title)
}

// Find builds a machine that scans in the given direction until needle is
// under the head, then accepts holding on it. Scanning past the tape end
// keeps going over blank cells, so the alphabet should include Blank if
// the needle may lie beyond the input.
func Find(needle domain.Symbol, dir domain.Direction, alphabet domain.Alphabet, title string) *domain.Machine {
	m := domain.New()
	m.SetInitialState("search")
	m.SetTitle(title)

	for sym := range alphabet {
		target, move := "search", dir
		if sym == needle {
			target, move = m.AcceptState(), domain.Hold
		}
		m.AddTransition(
			domain.TapeState{State: "search", Symbol: sym},
			domain.TapeReaction{Next: domain.TapeState{State: target, Symbol: sym}, Move: move},
		)
	}
	return m
}

// FindRight scans rightwards for needle.
func FindRight(needle domain.Symbol, alphabet domain.Alphabet, title string) *domain.Machine {
	return Find(needle, domain.Right, alphabet, title)
}

// FindLeft scans leftwards for needle.
func FindLeft(needle domain.Symbol, alphabet domain.Alphabet, title string) *domain.Machine {
	return Find(needle, domain.Left, alphabet, title)
}

// Consume builds a machine that expects exactly sym under the head and
// steps right over it. Any other symbol rejects.
func Consume(sym domain.Symbol, title string) *domain.Machine {
	m := domain.New()
	m.SetInitialState(string(rune(sym)))
	m.SetTitle(title)
	m.AddTransition(
		domain.TapeState{State: m.InitialState(), Symbol: sym},
		domain.TapeReaction{Next: domain.TapeState{State: m.AcceptState(), Symbol: sym}, Move: domain.Right},
	)
	return m
}

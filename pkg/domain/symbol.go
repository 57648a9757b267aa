package domain

import "sort"

// Symbol is one character of a machine's alphabet.
type Symbol rune

// Blank is the reserved tape filler symbol. The tape grows with Blank
// cells whenever the head moves past either end.
const Blank Symbol = '_'

// Alphabet is a finite set of symbols. Callers supply it per operation;
// there is no global alphabet.
type Alphabet map[Symbol]struct{}

// NewAlphabet builds an alphabet from the characters of s.
func NewAlphabet(s string) Alphabet {
	a := make(Alphabet, len(s))
	for _, r := range s {
		a[Symbol(r)] = struct{}{}
	}
	return a
}

// Contains reports whether sym is part of the alphabet.
func (a Alphabet) Contains(sym Symbol) bool {
	_, ok := a[sym]
	return ok
}

// Symbols returns the alphabet in sorted order, for deterministic iteration.
func (a Alphabet) Symbols() []Symbol {
	out := make([]Symbol, 0, len(a))
	for sym := range a {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package domain

import "testing"

func TestAddTransition_LastWriteWins(t *testing.T) {
	m := New()
	key := TapeState{State: "q0", Symbol: 'a'}

	m.AddTransition(key, TapeReaction{Next: TapeState{State: "q1", Symbol: 'a'}, Move: Hold})
	m.AddTransition(key, TapeReaction{Next: TapeState{State: "q2", Symbol: 'b'}, Move: Right})

	if m.Len() != 1 {
		t.Fatalf("expected 1 transition after duplicate upsert, got %d", m.Len())
	}
	r, ok := m.Lookup(key)
	if !ok {
		t.Fatal("expected a reaction for key")
	}
	if r.Next.State != "q2" || r.Next.Symbol != 'b' || r.Move != Right {
		t.Errorf("expected later reaction to win, got %+v", r)
	}
}

func TestAddTransitions_SliceOrderWins(t *testing.T) {
	m := New()
	key := TapeState{State: "q0", Symbol: 'a'}
	m.AddTransitions([]TransitionEntry{
		{From: key, To: TapeReaction{Next: TapeState{State: "first", Symbol: 'a'}, Move: Hold}},
		{From: key, To: TapeReaction{Next: TapeState{State: "second", Symbol: 'a'}, Move: Hold}},
	})

	r, _ := m.Lookup(key)
	if r.Next.State != "second" {
		t.Errorf("expected last entry to win, got %q", r.Next.State)
	}
}

func TestRedirectState(t *testing.T) {
	m := New()
	alphabet := NewAlphabet("ab_")
	m.RedirectState("from", "to", alphabet)

	if m.Len() != 3 {
		t.Fatalf("expected one transition per symbol, got %d", m.Len())
	}
	for sym := range alphabet {
		r, ok := m.Lookup(TapeState{State: "from", Symbol: sym})
		if !ok {
			t.Fatalf("missing redirect for symbol %q", sym)
		}
		if r.Next.State != "to" {
			t.Errorf("symbol %q: expected target 'to', got %q", sym, r.Next.State)
		}
		if r.Next.Symbol != sym {
			t.Errorf("symbol %q: redirect must not rewrite the symbol, got %q", sym, r.Next.Symbol)
		}
		if r.Move != Hold {
			t.Errorf("symbol %q: redirect must hold the head, got %v", sym, r.Move)
		}
	}
}

func TestDefaults(t *testing.T) {
	m := New()
	if m.InitialState() != DefaultInitialState {
		t.Errorf("initial: got %q", m.InitialState())
	}
	if m.AcceptState() != DefaultAcceptState {
		t.Errorf("accept: got %q", m.AcceptState())
	}
	if m.Title() != DefaultTitle {
		t.Errorf("title: got %q", m.Title())
	}
}

func TestClone_Independent(t *testing.T) {
	m := New()
	m.AddTransition(
		TapeState{State: "q0", Symbol: 'a'},
		TapeReaction{Next: TapeState{State: "q1", Symbol: 'a'}, Move: Hold},
	)

	c := m.Clone()
	c.AddTransition(
		TapeState{State: "q0", Symbol: 'b'},
		TapeReaction{Next: TapeState{State: "q1", Symbol: 'b'}, Move: Hold},
	)
	c.SetAcceptState("other")

	if m.Len() != 1 {
		t.Errorf("clone mutation leaked into original: %d transitions", m.Len())
	}
	if m.AcceptState() != DefaultAcceptState {
		t.Errorf("clone setter leaked into original: %q", m.AcceptState())
	}
}

func TestDirectionSpecifierRoundTrip(t *testing.T) {
	for _, d := range []Direction{Left, Right, Hold} {
		parsed, err := ParseSpecifier(d.Specifier())
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		if parsed != d {
			t.Errorf("round-trip mismatch: %v -> %q -> %v", d, d.Specifier(), parsed)
		}
	}

	if _, err := ParseSpecifier("^"); err == nil {
		t.Error("expected error for unknown specifier")
	}
}

func TestStatusMessages(t *testing.T) {
	cases := map[Status]string{
		Accept:  "Machine accepted.",
		Reject:  "Machine rejected.",
		Halt:    "Machine halted.",
		Running: "",
	}
	for status, want := range cases {
		if got := status.Message(); got != want {
			t.Errorf("%v: got %q, want %q", status, got, want)
		}
	}
	if Running.Terminal() {
		t.Error("Running must not be terminal")
	}
	for _, s := range []Status{Accept, Reject, Halt} {
		if !s.Terminal() {
			t.Errorf("%v must be terminal", s)
		}
	}
}

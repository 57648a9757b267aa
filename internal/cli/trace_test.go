package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tapeline/pkg/domain"
)

func hopper() *domain.Machine {
	m := domain.New()
	m.SetInitialState("q0")
	m.SetAcceptState("Y")
	m.AddTransition(
		domain.TapeState{State: "q0", Symbol: 'a'},
		domain.TapeReaction{Next: domain.TapeState{State: "q0", Symbol: 'a'}, Move: domain.Right},
	)
	m.AddTransition(
		domain.TapeState{State: "q0", Symbol: domain.Blank},
		domain.TapeReaction{Next: domain.TapeState{State: "Y", Symbol: domain.Blank}, Move: domain.Hold},
	)
	return m
}

func TestRunTrace(t *testing.T) {
	var buf bytes.Buffer
	err := RunTrace(context.Background(), hopper(), "a", TraceOptions{Out: &buf, NoColor: true})
	if err != nil {
		t.Fatalf("RunTrace failed: %v", err)
	}

	want := "v (q0)\n" +
		"a\n" +
		"_v (q0)\n" +
		"a_\n" +
		"_v (Y)\n" +
		"a_\n" +
		"Machine accepted.\n"
	if got := buf.String(); got != want {
		t.Errorf("trace mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunTraceStepLimit(t *testing.T) {
	looper := domain.New()
	looper.AddTransition(
		domain.TapeState{State: looper.InitialState(), Symbol: domain.Blank},
		domain.TapeReaction{Next: domain.TapeState{State: looper.InitialState(), Symbol: domain.Blank}, Move: domain.Hold},
	)

	var buf bytes.Buffer
	err := RunTrace(context.Background(), looper, "", TraceOptions{Out: &buf, NoColor: true, Limit: 5})
	if !errors.Is(err, domain.ErrStepLimit) {
		t.Fatalf("expected ErrStepLimit, got %v", err)
	}
}

func TestLoadMachine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hopper.tm")
	desc := "init: q0\naccept: Y\n\nq0,a\nq0,a,>\n\nq0,_\nY,_,-\n\n"
	if err := os.WriteFile(path, []byte(desc), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMachine(path)
	if err != nil {
		t.Fatalf("LoadMachine failed: %v", err)
	}
	if m.InitialState() != "q0" || m.AcceptState() != "Y" || m.Len() != 2 {
		t.Errorf("unexpected machine: init=%q accept=%q len=%d", m.InitialState(), m.AcceptState(), m.Len())
	}
}

func TestLoadMachineMissing(t *testing.T) {
	if _, err := LoadMachine("/does/not/exist.tm"); err == nil {
		t.Error("expected error for missing file")
	}
}

// Package cli contains the command-line execution logic shared by the
// tapeline commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"

	"tapeline/internal/runtime"
	"tapeline/pkg/codec"
	"tapeline/pkg/domain"
)

// TraceOptions configures a traced run.
type TraceOptions struct {
	// Out receives the trace. Defaults to stdout.
	Out io.Writer
	// Limit caps the number of steps. Zero means unbounded.
	Limit int
	// NoColor disables ANSI styling of the tape line.
	NoColor bool
}

// RunTrace executes the machine over input, printing the head marker and
// the tape after loading and after every step, then the terminal message.
func RunTrace(ctx context.Context, m *domain.Machine, input string, opts TraceOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	termOpts := []termenv.OutputOption{}
	if opts.NoColor {
		termOpts = append(termOpts, termenv.WithProfile(termenv.Ascii))
	}
	term := termenv.NewOutput(out, termOpts...)

	session := runtime.NewSession(m, runtime.WithStepLimit(opts.Limit))
	session.LoadInput(input)
	printFrame(term, session)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Limit > 0 && session.Steps() >= opts.Limit {
			return fmt.Errorf("no terminal state after %d steps: %w", session.Steps(), domain.ErrStepLimit)
		}

		status := session.Step()
		printFrame(term, session)
		if status.Terminal() {
			fmt.Fprintln(term, status.Message())
			return nil
		}
	}
}

func printFrame(term *termenv.Output, session *runtime.Session) {
	fmt.Fprintln(term, session.Head())
	fmt.Fprintln(term, term.String(session.Tape()).Foreground(termenv.ANSIBlue))
}

// LoadMachine reads a machine description from path.
func LoadMachine(path string) (*domain.Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open machine file: %w", err)
	}
	defer f.Close()

	m, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

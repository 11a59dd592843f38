package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"numprompt/internal/domain"
	"numprompt/internal/logger"
	"numprompt/internal/validate"
)

// ErrInputClosed reports that the input stream ended or failed before a
// valid number was read. The loop cannot make progress without input, so
// this is fatal to the program.
var ErrInputClosed = errors.New("input closed before a valid number was read")

// state tracks loop progress. The machine has exactly two states and one
// transition: a sanitized number moves it from awaiting to done.
type state int

const (
	stateAwaiting state = iota // no sanitized value yet
	stateDone                  // a sanitized value has been stored
)

// Loop drives the read-validate-repeat cycle over the injected streams.
type Loop struct {
	in       *bufio.Scanner
	out      io.Writer
	pipeline *validate.Pipeline
	reporter *Reporter
	log      *logger.Logger

	state   state
	current domain.Number
}

// NewLoop returns a loop reading lines from in and prompting on out.
func NewLoop(in io.Reader, out io.Writer, p *validate.Pipeline, r *Reporter, log *logger.Logger) *Loop {
	return &Loop{
		in:       bufio.NewScanner(in),
		out:      out,
		pipeline: p,
		reporter: r,
		log:      log,
		state:    stateAwaiting,
		current:  domain.InvalidNumber{},
	}
}

// Run prompts once, then reads and validates one line per iteration until a
// sanitized number is produced. The line read is the sole blocking point.
// Rejected attempts go through the reporter and the loop continues; an
// exhausted or failing input stream returns ErrInputClosed.
func (l *Loop) Run(ctx context.Context) (domain.SanitizedNumber, error) {
	fmt.Fprintf(l.out, "Please enter a number between %d and %d: ", domain.Min, domain.Max)

	for l.state != stateDone {
		if !l.in.Scan() {
			if err := l.in.Err(); err != nil {
				return domain.SanitizedNumber{}, fmt.Errorf("%w: %v", ErrInputClosed, err)
			}
			return domain.SanitizedNumber{}, ErrInputClosed
		}
		raw := l.in.Text()

		n, ok := l.pipeline.Run(ctx, raw)
		if !ok {
			l.reporter.ReportInvalidInput(raw)
			continue
		}

		// Replace the placeholder wholesale; the invalid shape is never
		// mutated into a sanitized one.
		l.current = n
		l.state = stateDone
	}

	n := l.current.(domain.SanitizedNumber)
	l.log.Debug("number accepted", "value", n.Value)
	fmt.Fprintf(l.out, "Great, you picked %d.\n", n.Value)
	return n, nil
}

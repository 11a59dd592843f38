package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/zoobzio/pipz"

	"numprompt/internal/domain"
	"numprompt/internal/logger"
)

// Sentinel errors separating the two failure causes inside the pipeline.
// User-facing reporting deliberately collapses both into one generic
// diagnostic; the distinction exists for debug logging only.
var (
	ErrNotANumber = errors.New("input has no leading integer")
	ErrOutOfRange = fmt.Errorf("number outside [%d, %d]", domain.Min, domain.Max)
)

// Attempt is the value flowing through the pipeline: the raw line plus the
// current validation result. Number starts as InvalidNumber and is replaced
// wholesale by each stage, never mutated in place.
type Attempt struct {
	Raw    string
	Number domain.Number
}

// Pipeline composes the parsing and sanitization stages into a single
// fail-fast sequence. A parse failure stops the sequence before the
// sanitize stage runs, which is the short-circuit law in structural form.
type Pipeline struct {
	seq *pipz.Sequence[Attempt]
	log *logger.Logger
}

// New builds the two-stage validation pipeline.
func New(log *logger.Logger) *Pipeline {
	parse := pipz.Apply("parse", func(_ context.Context, a Attempt) (Attempt, error) {
		n, ok := ParseNumber(a.Raw)
		if !ok {
			return a, ErrNotANumber
		}
		a.Number = n
		return a, nil
	})

	sanitize := pipz.Apply("sanitize", func(_ context.Context, a Attempt) (Attempt, error) {
		u, parsed := a.Number.(domain.UnsanitizedNumber)
		s, ok := SanitizeNumber(u, parsed)
		if !ok {
			return a, ErrOutOfRange
		}
		a.Number = s
		return a, nil
	})

	return &Pipeline{
		seq: pipz.NewSequence[Attempt]("validate", parse, sanitize),
		log: log,
	}
}

// Process runs raw through the staged sequence. Failures come back as a
// *pipz.Error[Attempt] wrapping ErrNotANumber or ErrOutOfRange and carrying
// the offending input.
func (p *Pipeline) Process(ctx context.Context, raw string) (Attempt, error) {
	return p.seq.Process(ctx, Attempt{Raw: raw, Number: domain.InvalidNumber{}})
}

// Run validates one raw line. The second return reports whether a sanitized
// number was produced; at this level validation failures are data, not
// errors.
func (p *Pipeline) Run(ctx context.Context, raw string) (domain.SanitizedNumber, bool) {
	out, err := p.Process(ctx, raw)
	if err != nil {
		var perr *pipz.Error[Attempt]
		if errors.As(err, &perr) {
			p.log.Debug("attempt rejected",
				"input", perr.InputData.Raw,
				"stage", perr.Path,
				"reason", perr.Err,
			)
		}
		return domain.SanitizedNumber{}, false
	}
	s, ok := out.Number.(domain.SanitizedNumber)
	if !ok {
		return domain.SanitizedNumber{}, false
	}
	return s, true
}

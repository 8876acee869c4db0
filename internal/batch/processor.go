package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bft-labs/et/internal/domain"
	"github.com/bft-labs/et/pkg/calendar"
	"github.com/bft-labs/et/pkg/duration"
	"github.com/bft-labs/et/pkg/log"
)

// ErrLinesFailed is returned by Finish under PolicyReport when at least one
// line could not be converted.
var ErrLinesFailed = errors.New("batch: some lines failed")

// Renderer formats a converted epoch as one output line.
type Renderer func(domain.Epoch) string

// EpochRenderer prints the decimal epoch.
func EpochRenderer(e domain.Epoch) string {
	return e.String()
}

// Stats counts what a Processor has seen.
type Stats struct {
	// Lines is the number of non-empty input lines.
	Lines int
	// Converted is the number of lines written as results.
	Converted int
	// Failed is the number of lines rejected.
	Failed int
}

// Option configures a Processor.
type Option func(*Processor)

// WithOffset applies off to every epoch before it is written.
func WithOffset(off duration.Offset) Option {
	return func(p *Processor) {
		p.offset = off
	}
}

// WithPolicy sets the malformed-line policy. The default is PolicyAbort.
func WithPolicy(policy Policy) Option {
	return func(p *Processor) {
		p.policy = policy
	}
}

// WithRenderer sets how results are printed. The default is EpochRenderer.
func WithRenderer(r Renderer) Option {
	return func(p *Processor) {
		p.render = r
	}
}

// WithLogger sets the logger for skipped lines. The default discards.
func WithLogger(l log.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// Processor converts epoch lines one at a time, writing one output line per
// non-empty input line in input order.
type Processor struct {
	out    io.Writer
	offset duration.Offset
	policy Policy
	render Renderer
	logger log.Logger
	stats  Stats
	line   int
}

// NewProcessor creates a Processor writing results to out.
func NewProcessor(out io.Writer, opts ...Option) *Processor {
	p := &Processor{
		out:    out,
		policy: PolicyAbort,
		render: EpochRenderer,
		logger: log.Nop,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run feeds every line of r through Line and then calls Finish.
func (p *Processor) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Line(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return p.Finish()
}

// Line converts a single input line. Blank lines are ignored. The returned
// error is non-nil only when the run must stop: a write failure, or a bad
// line under PolicyAbort.
func (p *Processor) Line(raw string) error {
	p.line++
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	p.stats.Lines++

	e, err := p.convert(text)
	if err != nil {
		p.stats.Failed++
		switch p.policy {
		case PolicySkip:
			p.logger.Warn("skipping line", log.Int("line", p.line), log.String("input", text), log.Err(err))
			return nil
		case PolicyReport:
			p.logger.Debug("reporting line", log.Int("line", p.line), log.Err(err))
			return p.write(fmt.Sprintf("error: line %d: %v", p.line, err))
		}
		return fmt.Errorf("line %d: %w", p.line, err)
	}

	p.stats.Converted++
	return p.write(p.render(e))
}

// Finish reports the outcome of the run once input is exhausted.
func (p *Processor) Finish() error {
	p.logger.Debug("batch finished",
		log.Int("lines", p.stats.Lines),
		log.Int("converted", p.stats.Converted),
		log.Int("failed", p.stats.Failed))
	if p.policy == PolicyReport && p.stats.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrLinesFailed, p.stats.Failed, p.stats.Lines)
	}
	return nil
}

// Stats returns the counters so far.
func (p *Processor) Stats() Stats {
	return p.stats
}

func (p *Processor) convert(text string) (domain.Epoch, error) {
	e, err := domain.ParseEpoch(text)
	if err != nil {
		return 0, err
	}
	if len(p.offset) == 0 {
		return e, nil
	}
	return calendar.ApplyOffset(e, p.offset)
}

func (p *Processor) write(line string) error {
	if _, err := io.WriteString(p.out, line+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

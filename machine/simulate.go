package machine

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/forthlab/stackvm/internal/outbuf"
	"github.com/forthlab/stackvm/internal/scheduleio"
	"github.com/forthlab/stackvm/internal/tracelog"
	"github.com/forthlab/stackvm/isa"
)

// defaultInstructionLimit bounds a run that never reaches HALT, e.g. a
// program stuck in an infinite loop with no way to terminate.
const defaultInstructionLimit = 1_000_000

// Option configures a Run.
type Option func(*runConfig)

type runConfig struct {
	schedule          []scheduleio.Event
	tracer            tracelog.Tracer
	instructionLimit  int
}

// WithSchedule supplies the simulated input schedule, polled for interrupt
// delivery on every instruction cycle.
func WithSchedule(events []scheduleio.Event) Option {
	return func(c *runConfig) { c.schedule = events }
}

// WithTracer attaches a per-instruction execution trace.
func WithTracer(t tracelog.Tracer) Option {
	return func(c *runConfig) { c.tracer = t }
}

// WithInstructionLimit overrides the default runaway-program guard.
func WithInstructionLimit(n int) Option {
	return func(c *runConfig) { c.instructionLimit = n }
}

// Result summarizes a completed run.
type Result struct {
	Output       string
	Instructions int
	Ticks        int
}

// Run executes prog to completion (HALT) or until the instruction limit is
// reached, writing emitted output to out as well as returning it in the
// result for convenience. Reaching the limit is reported as an error,
// returned together with the result of the run so far.
func Run(prog []isa.Instruction, out io.Writer, opts ...Option) (Result, error) {
	cfg := runConfig{instructionLimit: defaultInstructionLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sink bytes.Buffer
	writers := io.MultiWriter(&sink, out)
	ow := outbuf.New(writers)

	var sched *Schedule
	if cfg.schedule != nil {
		sched = NewSchedule(cfg.schedule)
	}

	cu := NewControlUnit(prog, ow, sched, cfg.tracer)

	result := func() Result {
		ticks := cu.Ticks() - 1
		if ticks < 0 {
			ticks = 0
		}
		return Result{Output: sink.String(), Instructions: cu.Instructions(), Ticks: ticks}
	}

	for cu.Instructions() < cfg.instructionLimit {
		err := cu.Step()
		if err == nil {
			continue
		}
		if errors.Is(err, errHalted) {
			return result(), nil
		}
		return Result{}, errors.Wrapf(err, "machine fault at instruction %d", cu.Instructions())
	}
	return result(), errors.Errorf("exceeded instruction limit %d without reaching halt", cfg.instructionLimit)
}

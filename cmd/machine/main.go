// Command machine runs a compiled instruction stream on the stack machine,
// optionally delivering a scheduled stream of simulated keyboard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/forthlab/stackvm/internal/codec"
	"github.com/forthlab/stackvm/internal/scheduleio"
	"github.com/forthlab/stackvm/internal/tracelog"
	"github.com/forthlab/stackvm/machine"
)

func main() {
	trace := flag.Bool("trace", false, "log every instruction cycle to stderr")
	limit := flag.Int("limit", 0, "instruction-count safety limit (0 = default)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: machine [-trace] [-limit N] <code-file> [<input-schedule-file>]")
		os.Exit(1)
	}

	if err := run(args, *trace, *limit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, trace bool, limit int) error {
	codeFile, err := os.Open(args[0])
	if err != nil {
		return errors.Wrapf(err, "open %s", args[0])
	}
	defer codeFile.Close()

	prog, err := codec.Read(codeFile)
	if err != nil {
		return errors.Wrapf(err, "decode %s", args[0])
	}

	var opts []machine.Option
	if trace {
		opts = append(opts, machine.WithTracer(tracelog.New(log.New(os.Stderr, "", 0))))
	}
	if limit > 0 {
		opts = append(opts, machine.WithInstructionLimit(limit))
	}
	if len(args) == 2 {
		raw, err := os.ReadFile(args[1])
		if err != nil {
			return errors.Wrapf(err, "read %s", args[1])
		}
		events, err := scheduleio.Parse(string(raw))
		if err != nil {
			return errors.Wrapf(err, "parse schedule %s", args[1])
		}
		opts = append(opts, machine.WithSchedule(events))
	}

	res, err := machine.Run(prog, io.Discard, opts...)
	if err != nil {
		return errors.Wrap(err, "run")
	}

	fmt.Printf("Output: %s\nInstructions: %d\nTicks: %d\n", res.Output, res.Instructions, res.Ticks)
	return nil
}

// Package codec persists a fixed-up instruction stream as the newline
// delimited JSON artifact the translator writes and the machine loads:
// one object per instruction, {"index":N,"command":"name"[,"arg":N]}.
package codec

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/forthlab/stackvm/isa"
)

type record struct {
	Index   int    `json:"index"`
	Command string `json:"command"`
	Arg     *int   `json:"arg,omitempty"`
}

// Write serializes prog as newline-delimited JSON records.
func Write(w io.Writer, prog []isa.Instruction) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, instr := range prog {
		rec := record{Index: instr.Index, Command: instr.Command.String()}
		if instr.HasArg {
			arg := instr.Arg
			rec.Arg = &arg
		}
		if err := enc.Encode(rec); err != nil {
			return errors.Wrapf(err, "encode instruction %d", instr.Index)
		}
	}
	return errors.Wrap(bw.Flush(), "flush compiled artifact")
}

// Read parses a newline-delimited JSON instruction stream.
func Read(r io.Reader) ([]isa.Instruction, error) {
	dec := json.NewDecoder(r)
	var prog []isa.Instruction
	for dec.More() {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			return nil, errors.Wrap(err, "decode compiled artifact")
		}
		op, ok := isa.OpcodeByName(rec.Command)
		if !ok {
			return nil, errors.Errorf("unknown opcode %q at index %d", rec.Command, rec.Index)
		}
		instr := isa.Instruction{Index: rec.Index, Command: op}
		if rec.Arg != nil {
			instr.Arg = *rec.Arg
			instr.HasArg = true
		}
		prog = append(prog, instr)
	}
	return prog, nil
}

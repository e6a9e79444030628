package isa

import "strconv"

// Disassemble renders the instruction at position pc as text and returns the
// index of the following instruction. It exists purely as a debugging aid
// and is not on any execution path.
func Disassemble(prog []Instruction, pc int) (next int, text string) {
	instr := prog[pc]
	s := instr.Command.String()
	if instr.HasArg {
		s += " " + strconv.Itoa(instr.Arg)
	}
	return pc + 1, s
}

// DisassembleAll renders every instruction in prog, one line per entry.
func DisassembleAll(prog []Instruction) []string {
	lines := make([]string, 0, len(prog))
	for pc := 0; pc < len(prog); {
		next, text := Disassemble(prog, pc)
		lines = append(lines, text)
		pc = next
	}
	return lines
}

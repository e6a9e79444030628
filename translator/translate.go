// Package translator turns stack-language source text into a fixed-up
// instruction stream the machine package can run directly.
package translator

import "github.com/forthlab/stackvm/isa"

// Translate compiles source into an instruction stream, running the full
// pipeline: lexing, structural validation, function and variable binding,
// reference resolution, if/else/then linking, interrupt relocation, opcode
// lowering and address fixup, in that order. The order matters: reference
// resolution must run before if/else/then linking sees its final term
// positions, and interrupt relocation must run after every other pass has
// settled word numbers, since it is the one step that reorders terms.
func Translate(source string) ([]isa.Instruction, error) {
	ctx := newContext()
	terms := Lex(source)

	if err := validateDoLoop(terms); err != nil {
		return nil, err
	}
	if err := validateBeginUntil(terms); err != nil {
		return nil, err
	}
	if err := assignFunctions(ctx, terms); err != nil {
		return nil, err
	}
	if err := assignVariables(ctx, terms); err != nil {
		return nil, err
	}
	resolveReferences(ctx, terms)
	if err := linkIfElseThen(terms); err != nil {
		return nil, err
	}

	relocated := relocateInterrupts(terms)
	return lowerAll(ctx, relocated)
}

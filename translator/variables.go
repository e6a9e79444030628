package translator

import (
	"strconv"
	"unicode"

	"github.com/forthlab/stackvm/isa"
)

// assignVariables scans for `variable NAME [SIZE allot]` declarations.
// Each variable is allocated one data-memory cell from the context's
// variable cursor; an `allot` within the next three terms reserves
// additional cells sized by the integer literal immediately preceding it.
func assignVariables(ctx *Context, terms []*Term) error {
	for idx, term := range terms {
		if term.Kind != isa.KindVariable {
			continue
		}
		if idx+1 >= len(terms) {
			return errAt(term.WordNumber, "missing variable name")
		}
		name := terms[idx+1]
		if name.Kind != isa.KindUnknown {
			return errAt(name.WordNumber, "variable name collides with a reserved word")
		}
		if len(name.Literal) == 0 || !unicode.IsLetter(rune(name.Literal[0])) {
			return errAt(name.WordNumber, "invalid variable name %q", name.Literal)
		}
		if _, ok := ctx.lookupVariable(name.Literal); ok {
			return errAt(name.WordNumber, "variable %q already declared", name.Literal)
		}
		ctx.declareVariable(name.Literal)
		name.Converted = true

		if idx+3 < len(terms) && terms[idx+3].Kind == isa.KindAllot {
			if err := allotVariableMemory(ctx, terms, idx+3); err != nil {
				return err
			}
		}
	}
	return nil
}

// allotVariableMemory handles the `SIZE allot` suffix. allotIdx is the
// index of the `allot` term; the size literal is the term right before it.
func allotVariableMemory(ctx *Context, terms []*Term, allotIdx int) error {
	allotTerm := terms[allotIdx]
	sizeTerm := terms[allotIdx-1]
	sizeTerm.Converted = true

	size, err := strconv.Atoi(sizeTerm.Literal)
	if err != nil {
		return errAt(allotTerm.WordNumber, "invalid allot size %q", sizeTerm.Literal)
	}
	if size < allotMin || size > allotMax {
		return errAt(allotTerm.WordNumber, "allot size %d out of range [%d, %d]", size, allotMin, allotMax)
	}
	ctx.allot(size)
	return nil
}

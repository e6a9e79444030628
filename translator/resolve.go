package translator

import (
	"strconv"

	"github.com/forthlab/stackvm/isa"
)

// resolveReferences rewrites every still-unknown, unconverted term: a name
// matching a variable is replaced by its address (as decimal text, so it
// lowers through the same path as a numeric literal); a name matching a
// function becomes a CALL term targeting the function's body. Anything
// still unresolved after both passes is assumed to be a numeric literal,
// checked for real at lowering time.
func resolveReferences(ctx *Context, terms []*Term) {
	for _, term := range terms {
		if term.Kind != isa.KindUnknown || term.Converted {
			continue
		}
		if addr, ok := ctx.lookupVariable(term.Literal); ok {
			term.Literal = strconv.Itoa(addr)
		}
	}
	for _, term := range terms {
		if term.Kind != isa.KindUnknown || term.Converted {
			continue
		}
		if target, ok := ctx.lookupFunction(term.Literal); ok {
			term.Kind = isa.KindCall
			term.Operand = target
			term.Literal = "call"
		}
	}
}

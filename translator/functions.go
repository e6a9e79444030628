package translator

import "github.com/forthlab/stackvm/isa"

// assignFunctions scans for DEF/DEF_INTR headers. Nesting is forbidden: at
// most one definition may be open at a time. Each definition registers its
// name at the word number right after the header, which is the name term
// itself; that term lowers to nothing, so a CALL to it lands on the first
// body instruction. A definition is closed by the next RET, which records the post-RET resume
// index (for the DEF/DEF_INTR term's own fall-through JMP) on the header.
func assignFunctions(ctx *Context, terms []*Term) error {
	var open *Term

	for idx, term := range terms {
		switch term.Kind {
		case isa.KindDef, isa.KindDefIntr:
			if idx+1 >= len(terms) {
				return errAt(term.WordNumber, "missing function name")
			}
			if open != nil {
				return errAt(term.WordNumber, "unclosed function")
			}
			name := terms[idx+1]
			if ctx.hasFunction(name.Literal) {
				return errAt(term.WordNumber, "duplicate function %q", name.Literal)
			}
			ctx.declareFunction(name.Literal, term.WordNumber+1)
			name.Converted = true
			open = term
		case isa.KindRet:
			if open == nil {
				return errAt(term.WordNumber, "ret outside function")
			}
			open.Operand = term.WordNumber + 1
			open = nil
		}
	}
	if open != nil {
		return errAt(open.WordNumber, "unclosed function")
	}
	return nil
}

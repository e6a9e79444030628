package translator

import "github.com/forthlab/stackvm/isa"

// unset marks a Term.Operand or Term.WordNumber-indexed field that has not
// yet been resolved by a semantic pass.
const unset = -1

// Term is one lexed source word annotated with its grammar kind and the
// metadata the semantic passes accumulate on it. WordNumber is the term's
// position in the original (pre-relocation) term list; it never changes
// once assigned, so it can be used as a stable key even after interrupt
// relocation reorders the slice.
type Term struct {
	WordNumber int
	Kind       isa.TermKind
	Literal    string

	// Converted marks a term already consumed by a neighboring term (e.g.
	// the name slot right after ':' or 'variable'); it lowers to nothing.
	Converted bool

	// Operand holds a term-indexed target resolved during semantic passes:
	// the matching THEN/ELSE/LOOP/UNTIL/BEGIN/DO word number, a function's
	// post-RET resume index, or a CALL target. unset until assigned.
	Operand int
}

func newTerm(wordNumber int, kind isa.TermKind, literal string) *Term {
	return &Term{WordNumber: wordNumber, Kind: kind, Literal: literal, Operand: unset}
}

// hasOperand reports whether a term-indexed operand has been assigned.
func (t *Term) hasOperand() bool {
	return t.Operand != unset
}

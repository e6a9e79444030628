package translator

import "github.com/forthlab/stackvm/isa"

// linkIfElseThen wires IF/ELSE/THEN jump targets in a single stack pass.
// IF and ELSE push themselves. THEN pops: if the popped term is ELSE, it
// pops again for the matching IF, wiring IF to jump past the then-branch
// (to the term after ELSE) and ELSE to jump past the else-branch (to the
// term after THEN); otherwise it wires IF to jump past the then-branch
// directly.
func linkIfElseThen(terms []*Term) error {
	var stack []*Term
	for _, term := range terms {
		switch term.Kind {
		case isa.KindIf, isa.KindElse:
			stack = append(stack, term)
		case isa.KindThen:
			if len(stack) == 0 {
				return errAt(term.WordNumber, "unbalanced if-else-then")
			}
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if last.Kind == isa.KindElse {
				lastElse := last
				if len(stack) == 0 {
					return errAt(term.WordNumber, "unbalanced if-else-then")
				}
				lastIf := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				lastElse.Operand = term.WordNumber + 1
				lastIf.Operand = lastElse.WordNumber + 1
			} else {
				last.Operand = term.WordNumber + 1
			}
		}
	}
	if len(stack) != 0 {
		return errAt(stack[0].WordNumber, "unbalanced if-else-then")
	}
	return nil
}

package translator

import "github.com/forthlab/stackvm/isa"

// validatePairs does a single linear scan pairing every `begin` term with the
// next unmatched `end` term, recording the opener's word number on the
// terminator's Operand. It fails if a terminator finds the stack empty, or
// if openers remain unmatched at the end of the scan.
func validatePairs(terms []*Term, begin, end isa.TermKind, construct string) error {
	var stack []*Term
	for _, term := range terms {
		switch term.Kind {
		case begin:
			stack = append(stack, term)
		case end:
			if len(stack) == 0 {
				return errAt(term.WordNumber, "unbalanced %s", construct)
			}
			opener := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			term.Operand = opener.WordNumber
		}
	}
	if len(stack) != 0 {
		return errAt(stack[0].WordNumber, "unbalanced %s", construct)
	}
	return nil
}

func validateDoLoop(terms []*Term) error {
	return validatePairs(terms, isa.KindDo, isa.KindLoop, "do ... loop")
}

func validateBeginUntil(terms []*Term) error {
	return validatePairs(terms, isa.KindBegin, isa.KindUntil, "begin ... until")
}

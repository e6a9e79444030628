package translator

import "github.com/forthlab/stackvm/isa"

// relocateInterrupts partitions the term list (after terms[0], the
// synthetic entrypoint) into the interrupt-service routine body and the
// main body, then returns a new slice ordered
// [entrypoint, isrTerms..., mainTerms...]. Every term after the entrypoint
// ends up in exactly one of the two queues, including the RET that closes
// every ordinary (non-ISR) function; the relocator must never drop it,
// regardless of how terms straddle a DEF_INTR/RET boundary.
//
// The entrypoint's Operand is set to the word number of the first
// main-body term (or, if the program has no main body at all, left unset
// so the lowering pass can fall back to jumping straight at the trailing
// HALT).
func relocateInterrupts(terms []*Term) []*Term {
	entry := terms[0]
	isrTerms := make([]*Term, 0, len(terms))
	mainTerms := make([]*Term, 0, len(terms))

	inISR := false
	for _, term := range terms[1:] {
		if term.Kind == isa.KindDefIntr {
			inISR = true
		}
		if term.Kind == isa.KindRet {
			if inISR {
				isrTerms = append(isrTerms, term)
			} else {
				mainTerms = append(mainTerms, term)
			}
			inISR = false
			continue
		}
		if inISR {
			isrTerms = append(isrTerms, term)
		} else {
			mainTerms = append(mainTerms, term)
		}
	}

	if len(mainTerms) > 0 {
		entry.Operand = mainTerms[0].WordNumber
	}

	relocated := make([]*Term, 0, len(terms))
	relocated = append(relocated, entry)
	relocated = append(relocated, isrTerms...)
	relocated = append(relocated, mainTerms...)
	return relocated
}

package translator

import "github.com/forthlab/stackvm/isa"

// lowerAll expands every term in relocated order into its opcode sequence,
// then fixes up addresses in two steps: first ADDR operands (which still
// carry a term word number from semantic analysis) are translated to a
// position in the relocated term order, since interrupt relocation can move
// a term's position without changing its word number; then that position,
// and every ADDR_REL offset, is resolved to an absolute instruction index
// via a prefix sum of opcode counts. A trailing HALT is appended.
func lowerAll(ctx *Context, terms []*Term) ([]isa.Instruction, error) {
	perTerm := make([][]isa.OpInstr, len(terms))
	positionOf := make(map[int]int, len(terms))
	for i, term := range terms {
		positionOf[term.WordNumber] = i
	}

	for i, term := range terms {
		ops, err := lowerTerm(ctx, term)
		if err != nil {
			return nil, err
		}
		for j := range ops {
			for k := range ops[j].Params {
				if ops[j].Params[k].Kind == isa.ParamAddr {
					pos, ok := positionOf[ops[j].Params[k].Value]
					if !ok {
						return nil, errAt(term.WordNumber, "address target word #%d not found", ops[j].Params[k].Value)
					}
					ops[j].Params[k].Value = pos
				}
			}
		}
		perTerm[i] = ops
	}

	prefixSum := make([]int, len(terms)+1)
	for i, ops := range perTerm {
		prefixSum[i+1] = prefixSum[i] + len(ops)
	}

	var out []isa.Instruction
	for i, ops := range perTerm {
		for _, op := range ops {
			instr := isa.Instruction{Command: op.Op}
			if len(op.Params) > 0 {
				instr.HasArg = true
				p := op.Params[0]
				switch p.Kind {
				case isa.ParamConst:
					instr.Arg = p.Value
				case isa.ParamAddr:
					instr.Arg = prefixSum[p.Value]
				case isa.ParamAddrRel:
					instr.Arg = len(out) + p.Value
				case isa.ParamUndefined:
					// The synthetic no-main-body jump: land exactly on the
					// trailing HALT, one past the last lowered term.
					instr.Arg = prefixSum[len(terms)]
				default:
					return nil, errAt(terms[i].WordNumber, "unresolved operand on %s", op.Op)
				}
			}
			instr.Index = len(out)
			out = append(out, instr)
		}
	}

	out = append(out, isa.Instruction{Index: len(out), Command: isa.OpHalt})
	return out, nil
}

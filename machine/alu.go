package machine

import "github.com/forthlab/stackvm/isa"

// aluOp computes the result of an opcode's ALU-backed operation on its two
// operands. It is a pure function: no registers, no side effects, mirroring
// the datapath's own separation between computation and state.
func aluOp(op isa.Opcode, a, b int) (int, error) {
	switch op {
	case isa.OpAdd:
		return a + b, nil
	case isa.OpSub:
		return a - b, nil
	case isa.OpDiv:
		if b == 0 {
			return 0, errDivByZero
		}
		return a / b, nil
	case isa.OpMod:
		if b == 0 {
			return 0, errDivByZero
		}
		return a % b, nil
	case isa.OpEq:
		return boolToCell(a == b), nil
	case isa.OpLs:
		return boolToCell(a >= b), nil
	case isa.OpOr:
		return boolToCell(a != 0 || b != 0), nil
	default:
		return 0, errNotALUOp
	}
}

func boolToCell(v bool) int {
	if v {
		return 1
	}
	return 0
}

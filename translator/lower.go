package translator

import (
	"strconv"

	"github.com/forthlab/stackvm/isa"
)

func noArg(op isa.Opcode) isa.OpInstr { return isa.OpInstr{Op: op} }

func addrOperand(op isa.Opcode, wordNumber int) isa.OpInstr {
	return isa.OpInstr{Op: op, Params: []isa.Param{{Kind: isa.ParamAddr, Value: wordNumber}}}
}

func constOperand(op isa.Opcode, value int) isa.OpInstr {
	return isa.OpInstr{Op: op, Params: []isa.Param{{Kind: isa.ParamConst, Value: value}}}
}

func relOperand(op isa.Opcode, offset int) isa.OpInstr {
	return isa.OpInstr{Op: op, Params: []isa.Param{{Kind: isa.ParamAddrRel, Value: offset}}}
}

// lowerTerm expands a single term into zero or more opcodes. ADDR operands
// still carry a term word number at this point; lowerAll (run after
// interrupt relocation) rewrites them to positions in the relocated term
// order and then turns those into absolute instruction indices.
func lowerTerm(ctx *Context, term *Term) ([]isa.OpInstr, error) {
	if term.Converted {
		return nil, nil
	}

	switch term.Kind {
	case isa.KindDI:
		return []isa.OpInstr{noArg(isa.OpDi)}, nil
	case isa.KindEI:
		return []isa.OpInstr{noArg(isa.OpEi)}, nil
	case isa.KindDup:
		return []isa.OpInstr{noArg(isa.OpDup)}, nil
	case isa.KindAdd:
		return []isa.OpInstr{noArg(isa.OpAdd)}, nil
	case isa.KindOr:
		return []isa.OpInstr{noArg(isa.OpOr)}, nil
	case isa.KindSub:
		return []isa.OpInstr{noArg(isa.OpSub)}, nil
	case isa.KindDiv:
		return []isa.OpInstr{noArg(isa.OpDiv)}, nil
	case isa.KindMod:
		return []isa.OpInstr{noArg(isa.OpMod)}, nil
	case isa.KindOmit:
		return []isa.OpInstr{noArg(isa.OpEmit)}, nil
	case isa.KindSwap:
		return []isa.OpInstr{noArg(isa.OpSwap)}, nil
	case isa.KindDrop:
		return []isa.OpInstr{noArg(isa.OpDrop)}, nil
	case isa.KindOver:
		return []isa.OpInstr{noArg(isa.OpOver)}, nil
	case isa.KindEq:
		return []isa.OpInstr{noArg(isa.OpEq)}, nil
	case isa.KindLs:
		return []isa.OpInstr{noArg(isa.OpLs)}, nil
	case isa.KindRead:
		return []isa.OpInstr{noArg(isa.OpRead)}, nil
	case isa.KindVariable, isa.KindAllot, isa.KindThen, isa.KindDefIntr, isa.KindBegin:
		return nil, nil
	case isa.KindStore:
		return []isa.OpInstr{noArg(isa.OpStore)}, nil
	case isa.KindLoad:
		return []isa.OpInstr{noArg(isa.OpLoad)}, nil
	case isa.KindIf:
		return []isa.OpInstr{addrOperand(isa.OpZJmp, term.Operand)}, nil
	case isa.KindElse:
		return []isa.OpInstr{addrOperand(isa.OpJmp, term.Operand)}, nil
	case isa.KindDef:
		return []isa.OpInstr{addrOperand(isa.OpJmp, term.Operand)}, nil
	case isa.KindRet:
		return []isa.OpInstr{noArg(isa.OpRet)}, nil
	case isa.KindDo:
		return []isa.OpInstr{
			noArg(isa.OpDi),
			noArg(isa.OpPop),
			noArg(isa.OpPop),
			noArg(isa.OpEi),
		}, nil
	case isa.KindLoop:
		return []isa.OpInstr{
			noArg(isa.OpDi),
			noArg(isa.OpRPop),
			noArg(isa.OpRPop),
			constOperand(isa.OpPush, 1),
			noArg(isa.OpAdd),
			noArg(isa.OpOver),
			noArg(isa.OpOver),
			noArg(isa.OpLs),
			addrOperand(isa.OpZJmp, term.Operand),
			noArg(isa.OpDrop),
			noArg(isa.OpDrop),
			noArg(isa.OpEi),
		}, nil
	case isa.KindUntil:
		return []isa.OpInstr{addrOperand(isa.OpZJmp, term.Operand)}, nil
	case isa.KindLoopCnt:
		return []isa.OpInstr{
			noArg(isa.OpDi),
			noArg(isa.OpRPop),
			noArg(isa.OpRPop),
			noArg(isa.OpOver),
			noArg(isa.OpOver),
			noArg(isa.OpPop),
			noArg(isa.OpPop),
			noArg(isa.OpSwap),
			noArg(isa.OpDrop),
			noArg(isa.OpEi),
		}, nil
	case isa.KindCall:
		return []isa.OpInstr{addrOperand(isa.OpCall, term.Operand)}, nil
	case isa.KindEntrypoint:
		if !term.hasOperand() {
			// No main body: jump straight past the ISR to the trailing HALT.
			return []isa.OpInstr{{Op: isa.OpJmp, Params: []isa.Param{{Kind: isa.ParamUndefined}}}}, nil
		}
		return []isa.OpInstr{addrOperand(isa.OpJmp, term.Operand)}, nil
	case isa.KindString:
		return lowerString(ctx, term.Literal), nil
	default:
		// Numeric literal or an already-resolved variable address (both
		// carry KindUnknown with the value as decimal text in Literal).
		n, err := strconv.Atoi(term.Literal)
		if err != nil {
			return nil, errAt(term.WordNumber, "undefined name %q", term.Literal)
		}
		return []isa.OpInstr{constOperand(isa.OpPush, n)}, nil
	}
}

// lowerString emits the cell-by-cell store of a string literal's contents
// followed by a small self-contained runtime loop that reloads the length,
// then repeatedly loads, emits and decrements, looping via PC-relative
// jumps until the whole string has been printed.
func lowerString(ctx *Context, content string) []isa.OpInstr {
	start := ctx.allocString(len(content))
	ops := make([]isa.OpInstr, 0, 4+3*len(content)+16)

	ops = append(ops,
		noArg(isa.OpPop),
		constOperand(isa.OpPush, len(content)),
		constOperand(isa.OpPush, start),
		noArg(isa.OpStore),
	)
	addr := start + 1
	for _, ch := range []byte(content) {
		ops = append(ops,
			constOperand(isa.OpPush, int(ch)),
			constOperand(isa.OpPush, addr),
			noArg(isa.OpStore),
		)
		addr++
	}

	ops = append(ops,
		constOperand(isa.OpPush, start),
		noArg(isa.OpLoad),
		constOperand(isa.OpPush, start),
		constOperand(isa.OpPush, 1),
		noArg(isa.OpAdd),
		noArg(isa.OpOver),
		relOperand(isa.OpZJmp, 12),
		noArg(isa.OpDup),
		noArg(isa.OpLoad),
		noArg(isa.OpRPop),
		noArg(isa.OpDup),
		noArg(isa.OpPop),
		noArg(isa.OpEmit),
		noArg(isa.OpSwap),
		constOperand(isa.OpPush, 1),
		noArg(isa.OpSub),
		noArg(isa.OpSwap),
		relOperand(isa.OpJmp, -14),
	)
	return ops
}

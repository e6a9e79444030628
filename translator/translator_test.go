package translator

import (
	"testing"

	"github.com/forthlab/stackvm/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDoLoopBalanced(t *testing.T) {
	terms := Lex("do i . loop")
	require.NoError(t, validateDoLoop(terms))
	var doTerm, loopTerm *Term
	for _, term := range terms {
		switch term.Kind {
		case isa.KindDo:
			doTerm = term
		case isa.KindLoop:
			loopTerm = term
		}
	}
	require.NotNil(t, doTerm)
	require.NotNil(t, loopTerm)
	assert.Equal(t, doTerm.WordNumber, loopTerm.Operand)
}

func TestValidateDoLoopUnbalanced(t *testing.T) {
	terms := Lex("do i .")
	err := validateDoLoop(terms)
	assert.Error(t, err)
}

func TestAssignFunctionsRejectsNesting(t *testing.T) {
	terms := Lex(": outer : inner ; ;")
	err := assignFunctions(newContext(), terms)
	assert.Error(t, err)
}

func TestAssignFunctionsRejectsDuplicate(t *testing.T) {
	terms := Lex(": double dup + ; : double dup + ;")
	err := assignFunctions(newContext(), terms)
	assert.Error(t, err)
}

func TestAssignVariablesAllot(t *testing.T) {
	ctx := newContext()
	terms := Lex("variable buf 10 allot")
	require.NoError(t, assignVariables(ctx, terms))
	addr, ok := ctx.lookupVariable("buf")
	require.True(t, ok)
	assert.Equal(t, variableBase, addr)
	assert.Equal(t, variableBase+1+10, ctx.variableAddr)
}

func TestAssignVariablesRejectsOutOfRangeAllot(t *testing.T) {
	ctx := newContext()
	terms := Lex("variable buf 500 allot")
	err := assignVariables(ctx, terms)
	assert.Error(t, err)
}

func TestLinkIfElseThenWithoutElse(t *testing.T) {
	terms := Lex("1 if 2 . then")
	require.NoError(t, linkIfElseThen(terms))
	var ifTerm, thenTerm *Term
	for _, term := range terms {
		switch term.Kind {
		case isa.KindIf:
			ifTerm = term
		case isa.KindThen:
			thenTerm = term
		}
	}
	require.NotNil(t, ifTerm)
	require.NotNil(t, thenTerm)
	assert.Equal(t, thenTerm.WordNumber+1, ifTerm.Operand)
}

func TestLinkIfElseThenWithElse(t *testing.T) {
	terms := Lex("1 if 2 . else 3 . then")
	require.NoError(t, linkIfElseThen(terms))
	var ifTerm, elseTerm, thenTerm *Term
	for _, term := range terms {
		switch term.Kind {
		case isa.KindIf:
			ifTerm = term
		case isa.KindElse:
			elseTerm = term
		case isa.KindThen:
			thenTerm = term
		}
	}
	require.NotNil(t, ifTerm)
	require.NotNil(t, elseTerm)
	assert.Equal(t, elseTerm.WordNumber+1, ifTerm.Operand)
	assert.Equal(t, thenTerm.WordNumber+1, elseTerm.Operand)
}

func TestResolveReferencesVariableAndFunction(t *testing.T) {
	ctx := newContext()
	terms := Lex(": inc 1 + ; variable buf buf inc")
	require.NoError(t, assignFunctions(ctx, terms))
	require.NoError(t, assignVariables(ctx, terms))
	resolveReferences(ctx, terms)

	addr, _ := ctx.lookupVariable("buf")
	var sawResolvedAddr bool
	var incCall *Term
	for _, term := range terms {
		if term.Kind == isa.KindUnknown && term.Literal == itoa(addr) {
			sawResolvedAddr = true
		}
		if term.Literal == "buf" && !term.Converted {
			t.Fatalf("unresolved variable reference left at word #%d", term.WordNumber)
		}
		if term.Kind == isa.KindCall {
			incCall = term
		}
	}
	assert.True(t, sawResolvedAddr)
	require.NotNil(t, incCall)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return sign + string(digits)
}

func TestRelocateInterruptsMovesISRBeforeMain(t *testing.T) {
	terms := Lex(":intr tick 1 . ; 2 .")
	require.NoError(t, assignFunctions(newContext(), terms))
	relocated := relocateInterrupts(terms)

	require.True(t, len(relocated) >= 3)
	assert.Equal(t, isa.KindEntrypoint, relocated[0].Kind)
	assert.Equal(t, isa.KindDefIntr, relocated[1].Kind)

	foundMain := false
	for _, term := range relocated {
		if term.Literal == "2" {
			foundMain = true
		}
	}
	assert.True(t, foundMain)
}

func TestRelocateInterruptsPreservesEveryRet(t *testing.T) {
	terms := Lex(": inc 1 + ; :intr tick 1 . ; : dec 1 - ; 5 inc dec")
	require.NoError(t, assignFunctions(newContext(), terms))

	want := 0
	for _, term := range terms {
		if term.Kind == isa.KindRet {
			want++
		}
	}
	require.Equal(t, 3, want)

	relocated := relocateInterrupts(terms)
	got := 0
	for _, term := range relocated {
		if term.Kind == isa.KindRet {
			got++
		}
	}
	assert.Equal(t, want, got)
}

func TestTranslateSimpleArithmetic(t *testing.T) {
	prog, err := Translate("1 2 + .")
	require.NoError(t, err)
	require.NotEmpty(t, prog)
	assert.Equal(t, isa.OpHalt, prog[len(prog)-1].Command)

	var sawAdd, sawEmit bool
	for _, instr := range prog {
		switch instr.Command {
		case isa.OpAdd:
			sawAdd = true
		case isa.OpEmit:
			sawEmit = true
		}
	}
	assert.True(t, sawAdd)
	assert.True(t, sawEmit)
}

func TestTranslateUnbalancedDoLoopFails(t *testing.T) {
	_, err := Translate("do 1 . ")
	assert.Error(t, err)
}

func TestTranslateRejectsUndefinedWordInFunction(t *testing.T) {
	prog, err := Translate(": square dup * ; 3 square .")
	assert.Error(t, err) // `*` is not a defined word in this language; dup/+ only
	_ = prog
}

func TestTranslateFunctionCallRoundTrips(t *testing.T) {
	prog, err := Translate(": inc 1 + ; 4 inc .")
	require.NoError(t, err)

	var sawCall, sawRet bool
	for _, instr := range prog {
		switch instr.Command {
		case isa.OpCall:
			sawCall = true
		case isa.OpRet:
			sawRet = true
		}
	}
	assert.True(t, sawCall)
	assert.True(t, sawRet)
}

func TestTranslateStringLiteral(t *testing.T) {
	prog, err := Translate(`." hi"`)
	require.NoError(t, err)

	var emits int
	for _, instr := range prog {
		if instr.Command == isa.OpEmit {
			emits++
		}
	}
	assert.Equal(t, 1, emits)
}

func TestTranslateNoMainBodyJumpsToHalt(t *testing.T) {
	prog, err := Translate(":intr tick 1 . ;")
	require.NoError(t, err)
	require.NotEmpty(t, prog)

	first := prog[0]
	require.Equal(t, isa.OpJmp, first.Command)
	assert.Equal(t, len(prog)-1, first.Arg)
}

package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forthlab/stackvm/isa"
)

func TestALUArithmetic(t *testing.T) {
	tests := []struct {
		op   isa.Opcode
		a, b int
		want int
	}{
		{isa.OpAdd, 2, 3, 5},
		{isa.OpSub, 5, 2, 3},
		{isa.OpDiv, 9, 3, 3},
		{isa.OpMod, 9, 4, 1},
		{isa.OpEq, 4, 4, 1},
		{isa.OpEq, 4, 5, 0},
		{isa.OpLs, 3, 5, 0},
		{isa.OpLs, 5, 3, 1},
		{isa.OpLs, 4, 4, 1},
		{isa.OpOr, 0, 0, 0},
		{isa.OpOr, 0, 7, 1},
	}
	for _, tt := range tests {
		got, err := aluOp(tt.op, tt.a, tt.b)
		assert.NoError(t, err)
		assert.Equalf(t, tt.want, got, "%s(%d,%d)", tt.op, tt.a, tt.b)
	}
}

func TestALUDivByZero(t *testing.T) {
	_, err := aluOp(isa.OpDiv, 1, 0)
	assert.Error(t, err)
	_, err = aluOp(isa.OpMod, 1, 0)
	assert.Error(t, err)
}

func TestALURejectsNonALUOpcode(t *testing.T) {
	_, err := aluOp(isa.OpDup, 1, 2)
	assert.Error(t, err)
}

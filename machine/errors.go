package machine

import "github.com/pkg/errors"

var (
	errDivByZero = errors.New("division by zero")
	errNotALUOp  = errors.New("opcode has no ALU operation")
	errHalted    = errors.New("machine halted")
)

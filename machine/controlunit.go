package machine

import (
	"github.com/pkg/errors"

	"github.com/forthlab/stackvm/internal/outbuf"
	"github.com/forthlab/stackvm/internal/tracelog"
	"github.com/forthlab/stackvm/isa"
)

const (
	memorySize      = 15000
	dataStackSize   = 15000
	returnStackSize = 15000

	// interruptVector is the fixed instruction index every interrupt
	// delivery jumps to: the first instruction of the interrupt-service
	// routine, which the translator's relocation pass always places right
	// after the entrypoint's own jump at index 0.
	interruptVector = 1
)

// Status is the machine's interrupt status word.
type Status struct {
	IntrOn  bool
	IntrReq bool
}

// ControlUnit drives the fetch-decode-execute cycle over a fixed, already
// fixed-up instruction stream, polling a Schedule for pending input after
// every instruction the way the original hardware polls its input line.
type ControlUnit struct {
	Program []isa.Instruction
	dp      *Datapath
	out     *outbuf.Writer
	schedule *Schedule
	tracer  tracelog.Tracer

	status   Status
	inputReg rune

	tick        int
	instruction int
}

// NewControlUnit builds a control unit ready to run prog. out receives
// EMIT/OMIT output; schedule may be nil for programs that never read input;
// tracer may be nil to disable tracing.
func NewControlUnit(prog []isa.Instruction, out *outbuf.Writer, schedule *Schedule, tracer tracelog.Tracer) *ControlUnit {
	return &ControlUnit{
		Program:  prog,
		dp:       newDatapath(memorySize, dataStackSize, returnStackSize),
		out:      out,
		schedule: schedule,
		tracer:   tracer,
		status:   Status{IntrOn: true},
	}
}

// Ticks reports the number of clock ticks spent so far.
func (c *ControlUnit) Ticks() int { return c.tick }

// Instructions reports the number of instruction cycles executed so far.
func (c *ControlUnit) Instructions() int { return c.instruction }

// Status returns the current interrupt status word.
func (c *ControlUnit) Status() Status { return c.status }

// Step executes exactly one instruction cycle: fetch, decode/execute, then
// poll for a deliverable interrupt. It returns errHalted once the program
// reaches HALT.
func (c *ControlUnit) Step() error {
	if c.dp.pc < 0 || c.dp.pc >= len(c.Program) {
		return errors.Errorf("program counter %d out of range", c.dp.pc)
	}
	instr := c.Program[c.dp.pc]
	c.instruction++

	cost, err := c.execute(instr)
	if err != nil {
		return err
	}
	c.tick += cost

	c.pollInterrupt()

	if c.tracer != nil {
		c.tracer.Tracef("tick=%d instr=%d pc=%d op=%s sp=%d i=%d",
			c.tick, c.instruction, c.dp.pc, instr.Command, c.dp.sp, c.dp.i)
	}
	return nil
}

func (c *ControlUnit) pollInterrupt() {
	if c.schedule == nil || !c.status.IntrOn {
		return
	}
	ch, ok := c.schedule.Poll(c.tick)
	if !ok {
		return
	}
	c.inputReg = ch
	c.status.IntrReq = false
	c.dp.retPush(c.dp.pc)
	c.dp.latchPCImmediate(interruptVector)
}

// execute runs one instruction and returns the tick cost it charges,
// leaving dp.pc pointing at the next instruction to fetch.
func (c *ControlUnit) execute(instr isa.Instruction) (int, error) {
	switch instr.Command {
	case isa.OpPush:
		c.dp.dataPush(instr.Arg)
		c.dp.latchPCInc()
		return 3, nil

	case isa.OpDrop:
		c.dp.dataPop()
		c.dp.latchPCInc()
		return 2, nil

	case isa.OpDup:
		c.dp.dataPush(c.dp.top())
		c.dp.latchPCInc()
		return 2, nil

	case isa.OpSwap:
		b := c.dp.dataPop()
		a := c.dp.dataPop()
		c.dp.dataPush(b)
		c.dp.dataPush(a)
		c.dp.latchPCInc()
		return 3, nil

	case isa.OpOver:
		c.dp.dataPush(c.dp.next())
		c.dp.latchPCInc()
		return 4, nil

	case isa.OpAdd, isa.OpSub, isa.OpDiv, isa.OpMod, isa.OpEq, isa.OpOr:
		b := c.dp.dataPop()
		a := c.dp.dataPop()
		res, err := aluOp(instr.Command, a, b)
		if err != nil {
			return 0, err
		}
		c.dp.dataPush(res)
		c.dp.latchPCInc()
		return 4, nil

	case isa.OpLs:
		// LS tests TOP against NEXT, the reverse of every other binary ALU
		// op, so its operands feed aluOp swapped.
		top := c.dp.dataPop()
		next := c.dp.dataPop()
		res, err := aluOp(instr.Command, top, next)
		if err != nil {
			return 0, err
		}
		c.dp.dataPush(res)
		c.dp.latchPCInc()
		return 4, nil

	case isa.OpLoad:
		addr := c.dp.dataPop()
		c.dp.dataPush(c.dp.memRead(addr))
		c.dp.latchPCInc()
		return 1, nil

	case isa.OpStore:
		addr := c.dp.dataPop()
		val := c.dp.dataPop()
		c.dp.memWrite(addr, val)
		c.dp.latchPCInc()
		return 4, nil

	case isa.OpJmp:
		c.dp.latchPCImmediate(instr.Arg)
		return 1, nil

	case isa.OpZJmp:
		v := c.dp.dataPop()
		if v == 0 {
			c.dp.latchPCImmediate(instr.Arg)
		} else {
			c.dp.latchPCInc()
		}
		return 2, nil

	case isa.OpCall:
		c.dp.retPush(c.dp.pc + 1)
		c.dp.latchPCImmediate(instr.Arg)
		return 2, nil

	case isa.OpRet:
		c.dp.latchPCImmediate(c.dp.retPop())
		return 2, nil

	case isa.OpPop:
		c.dp.retPush(c.dp.dataPop())
		c.dp.latchPCInc()
		return 4, nil

	case isa.OpRPop:
		c.dp.dataPush(c.dp.retPop())
		c.dp.latchPCInc()
		return 4, nil

	case isa.OpEmit:
		if err := c.emit(); err != nil {
			return 0, err
		}
		c.dp.latchPCInc()
		return 4, nil

	case isa.OpRead:
		c.dp.dataPush(int(c.inputReg))
		c.dp.latchPCInc()
		return 4, nil

	case isa.OpDi:
		c.status.IntrOn = false
		c.dp.latchPCInc()
		return 1, nil

	case isa.OpEi:
		c.status.IntrOn = true
		c.dp.latchPCInc()
		return 1, nil

	case isa.OpHalt:
		return 0, errHalted

	default:
		return 0, errors.Errorf("unimplemented opcode %s", instr.Command)
	}
}

// emit always consumes two data-stack cells: NEXT carries the sentinel
// test and, failing that, the character to print; TOP carries the value
// to print as decimal digits when the sentinel fires. A program that has
// only pushed one live value finds the stack's uninitialized sentinel
// fill sitting in NEXT and falls into digit mode without ever pushing the
// sentinel itself.
func (c *ControlUnit) emit() error {
	top := c.dp.top()
	next := c.dp.next()
	c.dp.dataPop()
	c.dp.dataPop()
	if rune(next) == isa.OutputDigitSentinel {
		return c.out.EmitDigits(top)
	}
	return c.out.EmitChar(rune(next))
}

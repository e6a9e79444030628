package machine

// Sentinel fill values make an uninitialized stack slot visible in a trace
// instead of silently reading as zero. Memory is not filled and starts at
// zero.
const (
	dataStackSentinel   = 8877
	returnStackSentinel = 8877
)

// Datapath holds every piece of state an instruction cycle can touch: the
// data and return stacks, linear memory, and the program counter. Every
// mutation goes through a named method, the software equivalent of the
// original hardware's latch-by-selector signals, so the control unit's
// decode table reads as a sequence of signals rather than ad hoc field
// writes.
type Datapath struct {
	Memory      []int
	dataStack   []int
	returnStack []int

	sp int
	i  int
	pc int
}

func newDatapath(memorySize, dataStackSize, returnStackSize int) *Datapath {
	d := &Datapath{
		Memory:      make([]int, memorySize),
		dataStack:   make([]int, dataStackSize),
		returnStack: make([]int, returnStackSize),
		sp:          4,
		i:           4,
	}
	for idx := range d.dataStack {
		d.dataStack[idx] = dataStackSentinel
	}
	for idx := range d.returnStack {
		d.returnStack[idx] = returnStackSentinel
	}
	return d
}

func (d *Datapath) latchSPInc() { d.sp++ }
func (d *Datapath) latchSPDec() { d.sp-- }
func (d *Datapath) latchIInc()  { d.i++ }
func (d *Datapath) latchIDec()  { d.i-- }

// latchPCImmediate vectors execution to an absolute instruction index.
func (d *Datapath) latchPCImmediate(addr int) { d.pc = addr }

// latchPCInc advances to the next sequential instruction; every opcode that
// does not branch falls through to it.
func (d *Datapath) latchPCInc() { d.pc++ }

func (d *Datapath) top() int { return d.dataStack[d.sp] }

func (d *Datapath) next() int {
	if d.sp-1 < 0 {
		return 0
	}
	return d.dataStack[d.sp-1]
}

func (d *Datapath) dataPush(v int) {
	d.latchSPInc()
	d.dataStack[d.sp] = v
}

func (d *Datapath) dataPop() int {
	v := d.dataStack[d.sp]
	d.latchSPDec()
	return v
}

func (d *Datapath) retPush(v int) {
	d.latchIInc()
	d.returnStack[d.i] = v
}

func (d *Datapath) retPop() int {
	v := d.returnStack[d.i]
	d.latchIDec()
	return v
}

func (d *Datapath) memRead(addr int) int { return d.Memory[addr] }

func (d *Datapath) memWrite(addr, v int) { d.Memory[addr] = v }

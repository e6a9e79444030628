package translator

import "github.com/dolthub/swiss"

const (
	// variableBase is the first data-memory cell handed out to user
	// variables. Addresses below it are reserved for the string pool.
	variableBase = 512

	// allotMin and allotMax bound the size literal accepted by `allot`.
	allotMin = 1
	allotMax = 100
)

// Context is the explicit, per-translation state threaded through every
// semantic pass: the variable table, the function table, and the two
// monotonic address cursors (variable and string pool). A fresh Context is
// created for every call to Translate so that no state leaks between
// translation jobs.
type Context struct {
	variables *swiss.Map[string, int]
	functions *swiss.Map[string, int]

	variableAddr int
	stringAddr   int
}

func newContext() *Context {
	return &Context{
		variables:    swiss.NewMap[string, int](16),
		functions:    swiss.NewMap[string, int](8),
		variableAddr: variableBase,
		stringAddr:   0,
	}
}

func (c *Context) declareVariable(name string) int {
	addr := c.variableAddr
	c.variables.Put(name, addr)
	c.variableAddr++
	return addr
}

func (c *Context) allot(size int) {
	c.variableAddr += size
}

func (c *Context) lookupVariable(name string) (int, bool) {
	return c.variables.Get(name)
}

func (c *Context) declareFunction(name string, bodyStart int) {
	c.functions.Put(name, bodyStart)
}

func (c *Context) hasFunction(name string) bool {
	_, ok := c.functions.Get(name)
	return ok
}

func (c *Context) lookupFunction(name string) (int, bool) {
	return c.functions.Get(name)
}

// allocString reserves size+1 cells (one length header cell, then one cell
// per character) in the string pool, starting right after the previous
// allocation, and returns the start address.
func (c *Context) allocString(size int) int {
	start := c.stringAddr
	c.stringAddr += size + 1
	return start
}

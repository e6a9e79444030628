package machine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forthlab/stackvm/translator"
)

// These tests compile source text with the translator and run the result on
// the machine, checking the actual emitted output rather than just the
// opcode stream the translator produced. Hand-built instruction streams in
// the rest of this package can get the operand order for EMIT or a loop
// condition wrong and still look plausible; only running the compiled
// program catches that.

func translateAndRun(t *testing.T, source string) string {
	t.Helper()
	prog, err := translator.Translate(source)
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := Run(prog, &out)
	require.NoError(t, err)
	return res.Output
}

func TestEndToEndArithmeticAndEmit(t *testing.T) {
	// A single pushed result falls back to decimal-digit printing because
	// the stack slot beneath it still carries the uninitialized sentinel;
	// no explicit sentinel push is needed.
	assert.Equal(t, "5", translateAndRun(t, "2 3 + ."))
}

func TestEndToEndStringLiteral(t *testing.T) {
	assert.Equal(t, "hi", translateAndRun(t, `." hi"`))
}

func TestEndToEndVariableStoreLoad(t *testing.T) {
	assert.Equal(t, "42", translateAndRun(t, "variable x 42 x ! x @ ."))
}

func TestEndToEndCountedLoop(t *testing.T) {
	assert.Equal(t, "01234", translateAndRun(t, "5 0 do i . loop"))
}

func TestEndToEndBeginUntilHaltsWithoutOutput(t *testing.T) {
	prog, err := translator.Translate("1 begin dup 1 + dup 5 = until drop")
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := Run(prog, &out)
	require.NoError(t, err)
	assert.Equal(t, "", res.Output)
	assert.Equal(t, 0, len(out.String()))
}

package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forthlab/stackvm/isa"
)

func TestWriteReadRoundTrip(t *testing.T) {
	prog := []isa.Instruction{
		{Index: 0, Command: isa.OpJmp, Arg: 2, HasArg: true},
		{Index: 1, Command: isa.OpDup},
		{Index: 2, Command: isa.OpPush, Arg: 42, HasArg: true},
		{Index: 3, Command: isa.OpHalt},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, prog))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, prog, got)
}

func TestReadRejectsUnknownOpcode(t *testing.T) {
	_, err := Read(bytes.NewBufferString(`{"index":0,"command":"frobnicate"}` + "\n"))
	assert.Error(t, err)
}

package emit

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/flowpat/internal/pattern"
)

func TestBinary_Emit(t *testing.T) {
	table := parse(t, "10|0,5/20|128,5,6")

	var out bytes.Buffer
	require.NoError(t, (&Binary{}).Emit(&out, table))

	expected := []byte{
		'F', 'P', 'A', 'T',
		3, 0, 0, 0, // instructions
		2, 0, 0, 0, // frames
		1, 0, 0, 0, // patterns
		5, 0,
		5, 128,
		6, 128,
		10, 0, 0, 0, 0, 0, 0, 0, 1,
		20, 0, 0, 0, 1, 0, 0, 0, 2,
		0, 0, 0, 0, 2,
	}
	assert.Equal(t, expected, out.Bytes())
}

func TestBinary_Truncation(t *testing.T) {
	table := &pattern.Table{
		Instructions: []pattern.Instruction{{Diode: 257, FinalValue: 300}},
	}

	var out bytes.Buffer
	require.NoError(t, (&Binary{}).Emit(&out, table))
	require.Len(t, out.Bytes(), 18)
	assert.Equal(t, []byte{1, 44}, out.Bytes()[16:])
}

func TestBinary_LargeOffsets(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("0|1")
	for i := 0; i < 70000; i++ {
		sb.WriteString(",")
		sb.WriteString(strconv.Itoa(i % 256))
	}
	sb.WriteString("/1|2,9")
	table := parse(t, sb.String())
	require.Len(t, table.Frames, 2)
	require.Equal(t, 70000, table.Frames[1].FirstInstruction)

	var out bytes.Buffer
	require.NoError(t, (&Binary{}).Emit(&out, table))

	data := out.Bytes()
	frameStart := 16 + 2*len(table.Instructions)
	second := data[frameStart+9 : frameStart+18]
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(second[0:4]))
	assert.Equal(t, uint32(70000), binary.LittleEndian.Uint32(second[4:8]))
	assert.Equal(t, uint8(1), second[8])
	require.Len(t, data, frameStart+2*9+5)
}

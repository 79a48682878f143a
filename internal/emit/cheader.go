package emit

import (
	"bufio"
	"io"
	"strconv"

	"github.com/vk/flowpat/internal/pattern"
)

// typeDecls are the struct layouts the arrays below are written against.
// Field widths are part of the firmware contract.
const typeDecls = `typedef struct {
uint8_t diode;
uint8_t finalValue;
} Instruction;
typedef struct {
uint32_t time;
uint8_t instLen;
Instruction* insts;
} Frame;
typedef struct {
uint8_t frameLen;
Frame* frames;
} Pattern;
`

// CHeader emits a C header with one const array per sequence. Frames and
// patterns point into the array below them with &array[offset].
type CHeader struct {
	Guard string
}

func (c *CHeader) Emit(w io.Writer, t *pattern.Table) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("#ifndef " + c.Guard + "\n")
	bw.WriteString("#define " + c.Guard + "\n")
	bw.WriteString("#define PATTERN_NUMBER " + strconv.Itoa(len(t.Patterns)) + "\n")
	bw.WriteString(typeDecls)

	bw.WriteString("const Instruction instructions[] = {\n")
	for _, in := range t.Instructions {
		bw.WriteString("{" + strconv.Itoa(in.Diode) + "," + strconv.Itoa(in.FinalValue) + "},\n")
	}
	bw.WriteString("};\n")

	bw.WriteString("const Frame frames[] = {\n")
	for _, f := range t.Frames {
		bw.WriteString("{" + strconv.Itoa(f.Time) + "," + strconv.Itoa(f.InstructionCount) +
			",&instructions[" + strconv.Itoa(f.FirstInstruction) + "]},\n")
	}
	bw.WriteString("};\n")

	bw.WriteString("const Pattern patterns[] = {\n")
	for _, p := range t.Patterns {
		bw.WriteString("{" + strconv.Itoa(p.FrameCount) + ",&frames[" + strconv.Itoa(p.FirstFrame) + "]},\n")
	}
	bw.WriteString("};\n")

	bw.WriteString("#endif\n")

	// bufio.Writer keeps the first write error and reports it here.
	return bw.Flush()
}

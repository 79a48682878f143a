package emit

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/vk/flowpat/internal/pattern"
)

// binaryMagic starts every blob written by Binary.
var binaryMagic = [4]byte{'F', 'P', 'A', 'T'}

// Binary emits a little-endian blob meant to be embedded as-is:
//
//	magic "FPAT"
//	uint32 instruction count, uint32 frame count, uint32 pattern count
//	instructions: uint8 diode, uint8 value
//	frames:       uint32 time, uint32 first instruction, uint8 count
//	patterns:     uint32 first frame, uint8 count
//
// Offsets are as wide as the counts in the header, so every record can
// reach any element. Diode, value, time and count fields are truncated to
// their width, matching the C struct fields they mirror.
type Binary struct{}

func (b *Binary) Emit(w io.Writer, t *pattern.Table) error {
	bw := bufio.NewWriter(w)
	le := binary.LittleEndian

	buf := make([]byte, 0, 16)
	buf = append(buf, binaryMagic[:]...)
	buf = le.AppendUint32(buf, uint32(len(t.Instructions)))
	buf = le.AppendUint32(buf, uint32(len(t.Frames)))
	buf = le.AppendUint32(buf, uint32(len(t.Patterns)))
	bw.Write(buf)

	for _, in := range t.Instructions {
		bw.Write([]byte{uint8(in.Diode), uint8(in.FinalValue)})
	}
	for _, f := range t.Frames {
		buf = buf[:0]
		buf = le.AppendUint32(buf, uint32(f.Time))
		buf = le.AppendUint32(buf, uint32(f.FirstInstruction))
		buf = append(buf, uint8(f.InstructionCount))
		bw.Write(buf)
	}
	for _, p := range t.Patterns {
		buf = buf[:0]
		buf = le.AppendUint32(buf, uint32(p.FirstFrame))
		buf = append(buf, uint8(p.FrameCount))
		bw.Write(buf)
	}

	return bw.Flush()
}

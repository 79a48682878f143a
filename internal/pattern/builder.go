package pattern

// Builder accumulates the three sequences of a single run. Entities are
// only ever appended; callers are expected to add all instructions of a
// frame before the frame, and all frames of a pattern before the pattern.
type Builder struct {
	instructions []Instruction
	frames       []Frame
	patterns     []Pattern
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// InstructionLen is the offset the next instruction will be stored at.
func (b *Builder) InstructionLen() int { return len(b.instructions) }

// FrameLen is the offset the next frame will be stored at.
func (b *Builder) FrameLen() int { return len(b.frames) }

func (b *Builder) AddInstruction(in Instruction) {
	b.instructions = append(b.instructions, in)
}

func (b *Builder) AddFrame(f Frame) {
	b.frames = append(b.frames, f)
}

func (b *Builder) AddPattern(p Pattern) {
	b.patterns = append(b.patterns, p)
}

// Table hands the accumulated sequences over as a Table. The Builder must
// not be used afterwards.
func (b *Builder) Table() *Table {
	t := &Table{
		Instructions: b.instructions,
		Frames:       b.frames,
		Patterns:     b.patterns,
	}
	b.instructions, b.frames, b.patterns = nil, nil, nil
	return t
}

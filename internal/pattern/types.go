package pattern

// Instruction sets one diode to a brightness value.
type Instruction struct {
	Diode      int
	FinalValue int
}

// Frame is a point in time at which a run of instructions must be realized.
type Frame struct {
	Time             int
	FirstInstruction int // offset into Table.Instructions
	InstructionCount int
}

// Pattern is one complete animation, a run of consecutive frames.
type Pattern struct {
	FirstFrame int // offset into Table.Frames
	FrameCount int
}

// Table holds the flattened result of a parse. The sequences must not be
// reordered: every Frame and Pattern refers to its children by position.
type Table struct {
	Instructions []Instruction
	Frames       []Frame
	Patterns     []Pattern
}

// FramesOf returns the frames referenced by p.
func (t *Table) FramesOf(p Pattern) []Frame {
	return t.Frames[p.FirstFrame : p.FirstFrame+p.FrameCount]
}

// InstructionsOf returns the instructions referenced by f.
func (t *Table) InstructionsOf(f Frame) []Instruction {
	return t.Instructions[f.FirstInstruction : f.FirstInstruction+f.InstructionCount]
}

package emit

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/flowpat/internal/pattern"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

type hclInstruction struct {
	Diode      int `cty:"diode"`
	FinalValue int `cty:"final_value"`
}

type hclFrame struct {
	Time             int `cty:"time"`
	InstructionCount int `cty:"instruction_count"`
	FirstInstruction int `cty:"first_instruction"`
}

type hclPattern struct {
	FrameCount int `cty:"frame_count"`
	FirstFrame int `cty:"first_frame"`
}

// HCL emits the three sequences as HCL attributes, for tooling that wants
// the flattened data without parsing C.
type HCL struct{}

func (h *HCL) Emit(w io.Writer, t *pattern.Table) error {
	insts := make([]hclInstruction, len(t.Instructions))
	for i, in := range t.Instructions {
		insts[i] = hclInstruction{Diode: in.Diode, FinalValue: in.FinalValue}
	}
	frames := make([]hclFrame, len(t.Frames))
	for i, f := range t.Frames {
		frames[i] = hclFrame{Time: f.Time, InstructionCount: f.InstructionCount, FirstInstruction: f.FirstInstruction}
	}
	patterns := make([]hclPattern, len(t.Patterns))
	for i, p := range t.Patterns {
		patterns[i] = hclPattern{FrameCount: p.FrameCount, FirstFrame: p.FirstFrame}
	}

	instVal, err := toCtyList(insts)
	if err != nil {
		return fmt.Errorf("failed to convert instructions: %w", err)
	}
	frameVal, err := toCtyList(frames)
	if err != nil {
		return fmt.Errorf("failed to convert frames: %w", err)
	}
	patternVal, err := toCtyList(patterns)
	if err != nil {
		return fmt.Errorf("failed to convert patterns: %w", err)
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("pattern_number", cty.NumberIntVal(int64(len(t.Patterns))))
	body.SetAttributeValue("instructions", instVal)
	body.SetAttributeValue("frames", frameVal)
	body.SetAttributeValue("patterns", patternVal)

	_, err = f.WriteTo(w)
	return err
}

// toCtyList converts a slice of cty-tagged structs into a cty list. An
// empty slice still yields a typed, empty list.
func toCtyList[T any](items []T) (cty.Value, error) {
	var zero T
	elemType, err := gocty.ImpliedType(zero)
	if err != nil {
		return cty.NilVal, err
	}
	return gocty.ToCtyValue(items, cty.List(elemType))
}

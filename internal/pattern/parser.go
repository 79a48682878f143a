package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	frameSep       = "/"
	groupSep       = "|"
	diodeSep       = ","
	maxLineBytes   = 16 << 20
	initialBufSize = 64 << 10
)

// Parse reads r line by line and flattens every non-blank line into a
// pattern. Parsing stops at the first malformed number and no table is
// returned in that case.
func Parse(r io.Reader) (*Table, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufSize), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := ParseLine(b, lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read patterns: %w", err)
	}
	return b.Table(), nil
}

// ParseLine appends the pattern described by line, together with its
// frames and instructions, to b. lineNo is only used for error reporting.
func ParseLine(b *Builder, lineNo int, line string) error {
	frameDescs := strings.Split(line, frameSep)
	firstFrame := b.FrameLen()

	for i, desc := range frameDescs {
		if err := parseFrame(b, lineNo, i, desc); err != nil {
			return err
		}
	}

	b.AddPattern(Pattern{FirstFrame: firstFrame, FrameCount: len(frameDescs)})
	return nil
}

func parseFrame(b *Builder, lineNo, frameIdx int, desc string) error {
	parts := strings.Split(desc, groupSep)

	time, err := parseInt(parts[0])
	if err != nil {
		return &MalformedNumberError{Line: lineNo, Frame: frameIdx, Group: -1, Field: FieldTime, Text: parts[0], Err: err}
	}

	first := b.InstructionLen()
	count := 0
	for g, group := range parts[1:] {
		n, err := parseGroup(b, group)
		if err != nil {
			err.Line, err.Frame, err.Group = lineNo, frameIdx, g
			return err
		}
		count += n
	}

	b.AddFrame(Frame{Time: time, FirstInstruction: first, InstructionCount: count})
	return nil
}

// parseGroup appends one instruction per diode of a "value,diode,..."
// group and returns how many it added. The returned error only has its
// field details filled in.
func parseGroup(b *Builder, group string) (int, *MalformedNumberError) {
	tokens := strings.Split(group, diodeSep)

	value, err := parseInt(tokens[0])
	if err != nil {
		return 0, &MalformedNumberError{Field: FieldValue, Text: tokens[0], Err: err}
	}

	for _, tok := range tokens[1:] {
		diode, err := parseInt(tok)
		if err != nil {
			return 0, &MalformedNumberError{Field: FieldDiode, Text: tok, Err: err}
		}
		b.AddInstruction(Instruction{Diode: diode, FinalValue: value})
	}
	return len(tokens) - 1, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

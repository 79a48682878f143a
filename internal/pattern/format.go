package pattern

import (
	"strconv"
	"strings"
)

// FormatLine writes p back in the input syntax. Adjacent instructions that
// share a value are folded into one group, so the result parses to the
// same instructions in the same order, though not necessarily to the same
// text it was read from.
func FormatLine(t *Table, p Pattern) string {
	var sb strings.Builder
	for i, f := range t.FramesOf(p) {
		if i > 0 {
			sb.WriteString(frameSep)
		}
		sb.WriteString(strconv.Itoa(f.Time))

		insts := t.InstructionsOf(f)
		for j, in := range insts {
			if j == 0 || insts[j-1].FinalValue != in.FinalValue {
				sb.WriteString(groupSep)
				sb.WriteString(strconv.Itoa(in.FinalValue))
			}
			sb.WriteString(diodeSep)
			sb.WriteString(strconv.Itoa(in.Diode))
		}
	}
	return sb.String()
}

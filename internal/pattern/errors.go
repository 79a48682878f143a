package pattern

import (
	"errors"
	"fmt"
)

// ErrMalformedNumber is matched by every MalformedNumberError.
var ErrMalformedNumber = errors.New("malformed number")

// Field names reported by MalformedNumberError.
const (
	FieldTime  = "time"
	FieldValue = "value"
	FieldDiode = "diode"
)

// MalformedNumberError reports a field that could not be parsed as an
// integer. Frame and Group are zero-based positions within the line.
type MalformedNumberError struct {
	Line  int
	Frame int
	Group int // -1 for the time field
	Field string
	Text  string
	Err   error
}

func (e *MalformedNumberError) Error() string {
	if e.Group < 0 {
		return fmt.Sprintf("line %d, frame %d: invalid %s %q: %v", e.Line, e.Frame, e.Field, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d, frame %d, group %d: invalid %s %q: %v", e.Line, e.Frame, e.Group, e.Field, e.Text, e.Err)
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMalformedNumber) succeed.
func (e *MalformedNumberError) Is(target error) bool {
	return target == ErrMalformedNumber
}

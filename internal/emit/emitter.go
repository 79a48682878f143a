package emit

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/vk/flowpat/internal/pattern"
)

// Supported output formats.
const (
	FormatC      = "c"
	FormatHCL    = "hcl"
	FormatBinary = "bin"
)

// ErrUnknownFormat is returned by New for a format it does not know.
var ErrUnknownFormat = errors.New("unknown output format")

// Emitter writes a complete artifact for t to w.
type Emitter interface {
	Emit(w io.Writer, t *pattern.Table) error
}

// Formats lists the accepted format names.
func Formats() []string {
	return []string{FormatC, FormatHCL, FormatBinary}
}

// New returns the emitter for format. guard is only used by the C header.
func New(format, guard string) (Emitter, error) {
	switch format {
	case FormatC, "":
		return &CHeader{Guard: guard}, nil
	case FormatHCL:
		return &HCL{}, nil
	case FormatBinary:
		return &Binary{}, nil
	default:
		return nil, fmt.Errorf("%w %q, expected one of: %s", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// Guard derives an include guard from an output path: the base name run
// through SanitizeGuard.
func Guard(path string) string {
	return SanitizeGuard(filepath.Base(path))
}

// SanitizeGuard turns name into a valid C macro name: uppercased, with
// every character that is not an ASCII letter or digit replaced by an
// underscore, and a leading digit prefixed with one.
func SanitizeGuard(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if i == 0 && r < unicode.MaxASCII && unicode.IsDigit(r) {
			sb.WriteRune('_')
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(unicode.ToUpper(r))
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

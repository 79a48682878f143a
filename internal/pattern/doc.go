/*
Package pattern parses the light-pattern text format and flattens it into
three index-addressed sequences: instructions, frames and patterns.

Each input line is one pattern, written as

	time|value,diode[,diode...][|value,diode...][/time|...]

Frames and patterns do not own their children. A frame records the offset
and length of its run inside the instruction sequence, and a pattern does
the same for the frame sequence. Document order is preserved at every
level, which keeps every run contiguous.
*/
package pattern

// Package emit serializes a flattened pattern.Table into an output
// artifact. Every emitter depends only on the table, so new output formats
// can be added without touching the parser.
package emit

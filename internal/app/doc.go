// Package app contains the conversion lifecycle: it opens the input and
// output files, runs the parser and hands the flattened table to the
// configured emitter. It is decoupled from any specific entrypoint.
package app

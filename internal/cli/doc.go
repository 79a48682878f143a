// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags, the FLOWPAT_FLAGS environment variable and an
// optional HCL config file into the application's configuration.
package cli

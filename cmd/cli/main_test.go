package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/flowpat/internal/cli"
)

func writeInput(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "patterns.txt")
	require.NoError(t, os.WriteFile(in, []byte(content), 0600), "failed to set up test file")
	return in, filepath.Join(dir, "led_patterns.h")
}

func TestRun_Converts(t *testing.T) {
	t.Parallel()

	in, outPath := writeInput(t, "100|255,0,1/200|0,0,1\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, "", []string{in, outPath})
	require.NoError(t, err)

	header, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(header), "#ifndef LED_PATTERNS_H\n")
	assert.Contains(t, string(header), "{200,2,&instructions[2]},\n")
	assert.Empty(t, out.String())
}

func TestRun_MalformedInputExitsCleanly(t *testing.T) {
	t.Parallel()

	in, outPath := writeInput(t, "100|abc,0\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, "", []string{in, outPath})
	require.NoError(t, err, "a malformed number is reported, not returned")
	assert.Contains(t, out.String(), "ERROR: not integer values found")

	info, statErr := os.Stat(outPath)
	require.NoError(t, statErr)
	assert.Zero(t, info.Size())
}

func TestRun_StrictFromEnv(t *testing.T) {
	t.Parallel()

	in, outPath := writeInput(t, "100|abc,0\n")
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, "-strict", []string{in, outPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conversion failed")
}

func TestRun_MissingArguments(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, "", []string{"only-one"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.NotZero(t, exitErr.Code)
	assert.NotContains(t, exitErr.Message, "Usage:")
	assert.Equal(t, 1, strings.Count(out.String(), "Usage:"), "usage is printed once")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, "", []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, "", []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

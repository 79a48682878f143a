package hclconfig

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/flowpat/internal/ctxlog"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flowpat.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up config file")
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
strict = true

output {
  format = "hcl"
  guard  = "MY_GUARD"
}

log {
  level  = "debug"
  format = "json"
}
`)

	file, err := Load(testContext(), path)
	require.NoError(t, err)

	require.NotNil(t, file.Strict)
	assert.True(t, *file.Strict)
	require.NotNil(t, file.Output)
	require.NotNil(t, file.Output.Format)
	assert.Equal(t, "hcl", *file.Output.Format)
	require.NotNil(t, file.Output.Guard)
	assert.Equal(t, "MY_GUARD", *file.Output.Guard)
	require.NotNil(t, file.Log)
	assert.Equal(t, "debug", *file.Log.Level)
	assert.Equal(t, "json", *file.Log.Format)
}

func TestLoad_Partial(t *testing.T) {
	path := writeConfig(t, `
output {
  guard = "ONLY_GUARD"
}
`)

	file, err := Load(testContext(), path)
	require.NoError(t, err)
	assert.Nil(t, file.Strict)
	assert.Nil(t, file.Log)
	require.NotNil(t, file.Output)
	assert.Nil(t, file.Output.Format)
	assert.Equal(t, "ONLY_GUARD", *file.Output.Guard)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "syntax error", content: "output {\n format = \n", errMsg: "failed to parse"},
		{name: "unknown attribute", content: "colour = \"red\"\n", errMsg: "failed to decode"},
		{name: "wrong type", content: "strict = \"maybe\"\n", errMsg: "failed to decode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(testContext(), writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testContext(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

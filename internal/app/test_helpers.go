package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest writes input to a temp file, points cfg at it and at an
// output path in the same directory, and returns the app together with
// its output and log buffers.
func SetupAppTest(t *testing.T, input string, cfg Config) (*App, *Config, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	dir := t.TempDir()
	if cfg.InputPath == "" {
		cfg.InputPath = filepath.Join(dir, "patterns.txt")
		if err := os.WriteFile(cfg.InputPath, []byte(input), 0600); err != nil {
			t.Fatalf("failed to set up input file: %v", err)
		}
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = filepath.Join(dir, "patterns.h")
	}
	cfg.LogLevel = "debug"

	config, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuffer, logBuffer := &SafeBuffer{}, &SafeBuffer{}
	testApp, err := NewApp(outBuffer, logBuffer, config)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("FLOWPAT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, config, outBuffer, logBuffer
}

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/secheck/internal/report"
)

// runCLI executes the root command with args and returns stdout.
// A configuration file with configYAML is always passed with -c so that
// files in the working or home directory do not leak into tests.
func runCLI(t *testing.T, configYAML, stdin string, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"-c", configPath}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

// decodeJSONReport parses the JSON envelope written by --json.
func decodeJSONReport(t *testing.T, data string) report.JSONReport {
	t.Helper()

	var decoded report.JSONReport
	if err := json.Unmarshal([]byte(data), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, data)
	}
	return decoded
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

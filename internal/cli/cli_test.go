package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/idelchi/dirtotal/internal/walker"
)

func tree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	for path, size := range map[string]int{"a.txt": 100, "b.txt": 50, "sub/c.txt": 25} {
		full := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(full, make([]byte, size), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := New("v1.2.3").Command()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestTableOutput(t *testing.T) {
	out, _, err := execute(t, "--workers", "3", tree(t))
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"175 B (175 bytes)", "Files:", "Elapsed:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	if !regexp.MustCompile(`Workers:\s+3\n`).MatchString(out) {
		t.Errorf("expected worker count in output:\n%s", out)
	}
}

func TestJSONOutput(t *testing.T) {
	root := tree(t)

	out, _, err := execute(t, "-o", "json", "--verify", root)
	if err != nil {
		t.Fatal(err)
	}

	var got walker.Stats
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}

	want := walker.Stats{Root: root, TotalBytes: 175, FileCount: 3, DirCount: 2, Workers: walker.DefaultWorkers}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(walker.Stats{}, "Elapsed")); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestDebugLogsToStderr(t *testing.T) {
	out, logs, err := execute(t, "--debug", "--log-format", "json", "-o", "json", tree(t))
	if err != nil {
		t.Fatal(err)
	}

	if logs == "" {
		t.Error("expected debug logs on stderr")
	}

	if strings.Contains(out, `"level"`) {
		t.Errorf("logs leaked into stdout:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}

	if strings.TrimSpace(out) != "v1.2.3" {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestInvalidArguments(t *testing.T) {
	root := tree(t)

	tests := map[string][]string{
		"bad output":      {"-o", "xml", root},
		"bad log format":  {"--log-format", "yaml", root},
		"zero workers":    {"-w", "0", root},
		"too many args":   {root, root},
		"missing root":    {filepath.Join(root, "nope")},
		"root is a file":  {filepath.Join(root, "a.txt")},
		"unknown flag":    {"--frobnicate", root},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := execute(t, args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestInvalidRootIsReported(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, _, err := execute(t, missing)
	if !errors.Is(err, walker.ErrInvalidRoot) {
		t.Fatalf("expected ErrInvalidRoot, got %v", err)
	}

	if !strings.Contains(err.Error(), missing) {
		t.Errorf("expected error to name the bad path, got %v", err)
	}
}

func TestPrintTableShowsErrors(t *testing.T) {
	var buf bytes.Buffer

	stats := &walker.Stats{Root: "/data", TotalBytes: 2048, ErrorCount: 2, Workers: 8, Elapsed: time.Second}

	if err := PrintTable(stats, &buf); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"2.0 KiB (2048 bytes)", "Unreadable:", "1s"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, buf.String())
		}
	}
}

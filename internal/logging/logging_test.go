package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer

	logger := Component(New(&buf, slog.LevelDebug, FormatText), "walker")
	logger.Info("hello")

	output := buf.String()
	if !strings.Contains(output, "component=walker") {
		t.Errorf("expected component=walker in output, got: %s", output)
	}

	if !strings.Contains(output, "hello") {
		t.Errorf("expected 'hello' in output, got: %s", output)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, slog.LevelInfo, FormatJSON).Info("json check")

	if !strings.Contains(buf.String(), `"level":"INFO"`) {
		t.Errorf("expected JSON level in output, got: %s", buf.String())
	}
}

func TestAutoFormatOnPipe(t *testing.T) {
	var buf bytes.Buffer

	// A buffer is not a terminal.
	New(&buf, slog.LevelInfo, "").Info("auto")

	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output for non-terminal writer, got: %s", buf.String())
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, slog.LevelWarn, FormatText)
	logger.Debug("hidden")
	logger.Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got: %s", buf.String())
	}
}

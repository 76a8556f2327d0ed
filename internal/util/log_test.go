package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"trace": LevelTrace,
		"TRACE": LevelTrace,
		"debug": LevelDebug,
		"info":  LevelInfo,
		"warn":  LevelWarn,
		"error": LevelError,
	}

	for input, want := range tests {
		if got := ParseLogLevel(input); got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}

	if got := ParseLogLevel("unknown"); got != LevelInfo {
		t.Fatalf("ParseLogLevel default = %v, want %v", got, LevelInfo)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LevelWarn, &buf)

	logger.Infof("hidden %d", 1)
	logger.Warnf("shown %d", 2)
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "shown 2") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LevelInfo, &buf)
	if logger.Level() != LevelInfo {
		t.Fatalf("Level() = %v, want info", logger.Level())
	}

	logger.Tracef("before")
	logger.SetLevel(LevelTrace)
	logger.Tracef("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Fatalf("trace line logged before level change: %q", out)
	}
	if !strings.Contains(out, "[TRACE]") || !strings.Contains(out, "after") {
		t.Fatalf("expected trace line after level change, got %q", out)
	}
	if logger.Level() != LevelTrace {
		t.Fatalf("Level() = %v, want trace", logger.Level())
	}
}

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("with default output", func(t *testing.T) {
		logger := NewLogger(Config{Level: InfoLevel})
		if logger == nil {
			t.Fatal("NewLogger returned nil")
		}
		if logger.writer != os.Stderr {
			t.Error("Logger should default to stderr")
		}
	})

	t.Run("with custom output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(Config{Level: InfoLevel, Output: buf})
		if logger.writer != buf {
			t.Error("Logger should use provided output writer")
		}
	})
}

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		configLvl LogLevel
		logLvl    LogLevel
		shouldLog bool
	}{
		{"debug logs debug", DebugLevel, DebugLevel, true},
		{"debug logs error", DebugLevel, ErrorLevel, true},
		{"info skips debug", InfoLevel, DebugLevel, false},
		{"info logs info", InfoLevel, InfoLevel, true},
		{"info logs warn", InfoLevel, WarnLevel, true},
		{"warn skips info", WarnLevel, InfoLevel, false},
		{"warn logs warn", WarnLevel, WarnLevel, true},
		{"error skips warn", ErrorLevel, WarnLevel, false},
		{"error logs error", ErrorLevel, ErrorLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(Config{Level: tt.configLvl, Output: buf})

			logger.log(tt.logLvl, "test message", nil)

			hasOutput := buf.Len() > 0
			if hasOutput != tt.shouldLog {
				t.Errorf("shouldLog = %v, but hasOutput = %v", tt.shouldLog, hasOutput)
			}
		})
	}
}

func TestLevelMethods(t *testing.T) {
	tests := []struct {
		level LogLevel
		call  func(l *Logger, msg string)
	}{
		{DebugLevel, func(l *Logger, msg string) { l.Debug(msg, nil) }},
		{InfoLevel, func(l *Logger, msg string) { l.Info(msg, nil) }},
		{WarnLevel, func(l *Logger, msg string) { l.Warn(msg, nil) }},
		{ErrorLevel, func(l *Logger, msg string) { l.Error(msg, nil) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(Config{Level: DebugLevel, Output: buf})

			tt.call(logger, "some message")

			output := buf.String()
			if !strings.Contains(output, "["+string(tt.level)+"]") {
				t.Errorf("output should contain level %q, got: %s", tt.level, output)
			}
			if !strings.Contains(output, "some message") {
				t.Errorf("output should contain message, got: %s", output)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(Config{
		Level:  InfoLevel,
		Format: JSONFormat,
		Output: buf,
	})

	logger.Info("file rewritten", map[string]interface{}{
		"lines": 42,
		"path":  "BUILD.gn",
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}

	if entry["level"] != "info" {
		t.Errorf("level = %v, want 'info'", entry["level"])
	}
	if entry["message"] != "file rewritten" {
		t.Errorf("message = %v, want 'file rewritten'", entry["message"])
	}
	if entry["timestamp"] == nil {
		t.Error("timestamp should be present")
	}

	fields, ok := entry["fields"].(map[string]interface{})
	if !ok {
		t.Fatal("fields should be a map")
	}
	if fields["lines"] != float64(42) {
		t.Errorf("fields.lines = %v, want 42", fields["lines"])
	}
	if fields["path"] != "BUILD.gn" {
		t.Errorf("fields.path = %v, want BUILD.gn", fields["path"])
	}
}

func TestHumanFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(Config{Level: InfoLevel, Format: HumanFormat, Output: buf})

	logger.Info("human readable", map[string]interface{}{
		"key": "value",
	})

	output := buf.String()
	if !strings.Contains(output, "[info]") {
		t.Errorf("Output should contain '[info]', got: %s", output)
	}
	if !strings.Contains(output, "human readable") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Output should contain field, got: %s", output)
	}
}

func TestHumanFormatNoFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(Config{Level: InfoLevel, Format: HumanFormat, Output: buf})

	logger.Info("no fields", nil)

	if strings.Contains(buf.String(), "|") {
		t.Errorf("Output without fields should not contain '|', got: %s", buf.String())
	}
}

func TestHumanFormatSortsFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(Config{Level: InfoLevel, Format: HumanFormat, Output: buf})

	logger.Info("test", map[string]interface{}{
		"c": 3,
		"a": 1,
		"b": 2,
	})

	if !strings.HasSuffix(buf.String(), "| a=1, b=2, c=3\n") {
		t.Errorf("fields should be sorted by key, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		level, err := ParseLevel(s)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", s, err)
		}
		if string(level) != s {
			t.Errorf("ParseLevel(%q) = %q", s, level)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(verbose) should fail")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != JSONFormat {
		t.Errorf("ParseFormat(json) = %q, %v", f, err)
	}
	if f, err := ParseFormat("human"); err != nil || f != HumanFormat {
		t.Errorf("ParseFormat(human) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	// Must not panic or write anywhere visible.
	logger.Error("dropped", map[string]interface{}{"k": "v"})
	if logger.shouldLog(WarnLevel) {
		t.Error("Discard logger should only pass errors to io.Discard")
	}
}

func TestHumanLine(t *testing.T) {
	got := humanLine("2026-01-15T10:00:00Z", WarnLevel, "lines dropped", map[string]interface{}{
		"path":  "BUILD.gn",
		"lines": 2,
	})
	want := "2026-01-15T10:00:00Z [warn] lines dropped | lines=2, path=BUILD.gn\n"
	if got != want {
		t.Errorf("humanLine() = %q, want %q", got, want)
	}
}

func TestJSONFormatFallsBackToHuman(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(Config{Level: InfoLevel, Format: JSONFormat, Output: buf})

	logger.Info("unencodable", map[string]interface{}{"ch": make(chan int)})

	if !strings.Contains(buf.String(), "[info] unencodable | ch=") {
		t.Errorf("expected a human line, got: %s", buf.String())
	}
}

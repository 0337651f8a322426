// Package logging writes leveled diagnostics as human readable lines or JSON.
//
// Diagnostics go to stderr by default; stdout is left to diffs, prompts and
// "no change" notices.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

var levelRank = map[LogLevel]int{
	DebugLevel: 0,
	InfoLevel:  1,
	WarnLevel:  2,
	ErrorLevel: 3,
}

// Format selects how entries are rendered
type Format string

const (
	HumanFormat Format = "human"
	JSONFormat  Format = "json"
)

// ParseLevel converts a config value into a LogLevel
func ParseLevel(s string) (LogLevel, error) {
	level := LogLevel(s)
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// ParseFormat converts a config value into a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case HumanFormat, JSONFormat:
		return f, nil
	}
	return "", fmt.Errorf("unknown log format %q", s)
}

// Config holds logger configuration
type Config struct {
	Format Format
	Level  LogLevel
	Output io.Writer // nil means stderr
}

// Logger writes entries at or above its level to a single writer
type Logger struct {
	json   bool
	min    int
	writer io.Writer
}

// NewLogger creates a logger from cfg
func NewLogger(cfg Config) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		json:   cfg.Format == JSONFormat,
		min:    levelRank[cfg.Level],
		writer: w,
	}
}

// Discard returns a logger that drops every message
func Discard() *Logger {
	return NewLogger(Config{Level: ErrorLevel, Output: io.Discard})
}

func (l *Logger) shouldLog(level LogLevel) bool {
	return levelRank[level] >= l.min
}

type jsonEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     LogLevel               `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

func (l *Logger) log(level LogLevel, message string, fields map[string]interface{}) {
	if !l.shouldLog(level) {
		return
	}
	ts := time.Now().UTC().Format(time.RFC3339)

	if l.json {
		data, err := json.Marshal(jsonEntry{Timestamp: ts, Level: level, Message: message, Fields: fields})
		if err == nil {
			_, _ = l.writer.Write(append(data, '\n'))
			return
		}
		// Unencodable field values fall back to the human line.
	}
	_, _ = io.WriteString(l.writer, humanLine(ts, level, message, fields))
}

// humanLine renders "<ts> [level] message | k1=v1, k2=v2" with keys sorted
func humanLine(ts string, level LogLevel, message string, fields map[string]interface{}) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s", ts, level, message)
	for i, k := range slices.Sorted(maps.Keys(fields)) {
		sep := ", "
		if i == 0 {
			sep = " | "
		}
		fmt.Fprintf(&sb, "%s%s=%v", sep, k, fields[k])
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (l *Logger) Debug(message string, fields map[string]interface{}) {
	l.log(DebugLevel, message, fields)
}

func (l *Logger) Info(message string, fields map[string]interface{}) {
	l.log(InfoLevel, message, fields)
}

func (l *Logger) Warn(message string, fields map[string]interface{}) {
	l.log(WarnLevel, message, fields)
}

func (l *Logger) Error(message string, fields map[string]interface{}) {
	l.log(ErrorLevel, message, fields)
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

// captureLogOutputWithInit captures output through InitLoggerWithWriter so the
// ReplaceAttr logic is exercised.
func captureLogOutputWithInit(level Level, format Format, f func()) string {
	var buf bytes.Buffer
	InitLoggerWithWriter(&buf, level, format)
	f()
	InitLogger(LevelWarn, FormatText)
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{name: "Debug level JSON format", level: LevelDebug, format: FormatJSON},
		{name: "Info level JSON format", level: LevelInfo, format: FormatJSON},
		{name: "Warn level JSON format", level: LevelWarn, format: FormatJSON},
		{name: "Error level JSON format", level: LevelError, format: FormatJSON},
		{name: "Info level Text format", level: LevelInfo, format: FormatText},
		{name: "Default level (invalid value)", level: Level(999), format: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if defaultLogger == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	output := captureLogOutputWithInit(LevelWarn, FormatJSON, func() {
		InfoContext(context.Background(), "hidden")
		WarnContext(context.Background(), "shown")
	})
	if strings.Contains(output, "hidden") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(output, "shown") {
		t.Error("Warn message should pass at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat("Text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(Text) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestGetSessionID(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "Context with session ID",
			ctx:      WithSessionID(context.Background(), "test-id"),
			expected: "test-id",
		},
		{
			name:     "Context without session ID",
			ctx:      context.Background(),
			expected: "",
		},
		{
			name:     "Context with wrong type value",
			ctx:      context.WithValue(context.Background(), SessionIDKey, 12345),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSessionID(tt.ctx); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestLoggerFromContextAddsSessionID(t *testing.T) {
	ctx := WithSessionID(context.Background(), "sess-42")
	output := captureLogOutput(func() {
		InfoContext(ctx, "with session")
	})
	if !strings.Contains(output, `"session_id":"sess-42"`) {
		t.Errorf("Expected session_id in output, got %s", output)
	}

	output = captureLogOutput(func() {
		InfoContext(context.Background(), "without session")
	})
	if strings.Contains(output, "session_id") {
		t.Errorf("Unexpected session_id in output: %s", output)
	}
}

func TestLoggingFunctions(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"DebugContext", func() { DebugContext(ctx, "debug message", "key", "value") }, "DEBUG"},
		{"InfoContext", func() { InfoContext(ctx, "info message") }, "INFO"},
		{"WarnContext", func() { WarnContext(ctx, "warning message") }, "WARN"},
		{"ErrorContext", func() { ErrorContext(ctx, "error message") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.fn)
			if !strings.Contains(output, tt.want) {
				t.Errorf("Expected level %s in %q", tt.want, output)
			}
		})
	}
}

func decodeOne(t *testing.T, output string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &m); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, output)
	}
	return m
}

func TestSelectionChanged(t *testing.T) {
	output := captureLogOutput(func() {
		SelectionChanged(context.Background(), "add", "John 3:16-18", 2, 1, 5, "source", "cli")
	})
	m := decodeOne(t, output)
	if m["msg"] != "selection_changed" || m["passage"] != "John 3:16-18" {
		t.Errorf("unexpected record: %v", m)
	}
	if m["added"] != float64(2) || m["skipped"] != float64(1) || m["total"] != float64(5) {
		t.Errorf("counts wrong: %v", m)
	}
	if m["source"] != "cli" {
		t.Error("Expected extra args to be appended")
	}
}

func TestSetSaved(t *testing.T) {
	output := captureLogOutput(func() {
		SetSaved(context.Background(), "abc", "Memory", 3)
	})
	m := decodeOne(t, output)
	if m["msg"] != "set_saved" || m["set_id"] != "abc" || m["verses"] != float64(3) {
		t.Errorf("unexpected record: %v", m)
	}
}

func TestSetExported(t *testing.T) {
	output := captureLogOutput(func() {
		SetExported(context.Background(), "out.tar.xz", 2, 1500*time.Millisecond)
	})
	m := decodeOne(t, output)
	if m["msg"] != "set_exported" || m["duration_ms"] != float64(1500) {
		t.Errorf("unexpected record: %v", m)
	}
}

func TestStoreOpenedAndError(t *testing.T) {
	output := captureLogOutput(func() {
		StoreOpened("cards.db", "sqlite")
	})
	if !strings.Contains(output, "store_opened") || !strings.Contains(output, "cards.db") {
		t.Errorf("unexpected output: %s", output)
	}

	output = captureLogOutput(func() {
		StoreError(context.Background(), "save", errors.New("disk full"))
	})
	m := decodeOne(t, output)
	if m["level"] != "ERROR" || m["error"] != "disk full" || m["operation"] != "save" {
		t.Errorf("unexpected record: %v", m)
	}
}

func TestReplaceAttrTimestamp(t *testing.T) {
	output := captureLogOutputWithInit(LevelInfo, FormatJSON, func() {
		InfoContext(context.Background(), "timestamp test")
	})
	m := decodeOne(t, output)
	ts, ok := m["time"].(string)
	if !ok {
		t.Fatalf("Expected time attribute, got %v", m)
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("Expected RFC3339 timestamp, got %q", ts)
	}
}

func TestTextFormat(t *testing.T) {
	output := captureLogOutputWithInit(LevelInfo, FormatText, func() {
		InfoContext(context.Background(), "test message text", "key", "value")
	})
	if !strings.Contains(output, `msg="test message text"`) || !strings.Contains(output, "key=value") {
		t.Errorf("unexpected text output: %s", output)
	}
}

func TestInit(t *testing.T) {
	if defaultLogger == nil {
		t.Error("Expected defaultLogger to be initialized by init()")
	}
}

func TestLevelConstants(t *testing.T) {
	if LevelDebug >= LevelInfo || LevelInfo >= LevelWarn || LevelWarn >= LevelError {
		t.Error("Expected Debug < Info < Warn < Error")
	}
}

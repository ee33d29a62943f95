package xslog

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "upper case", input: "WARN", want: LevelWarn},
		{name: "surrounding space", input: " error ", want: LevelError},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvKey, "bogus")
	if got := FromEnv(); got != Default {
		t.Errorf("FromEnv() = %q, want %q", got, Default)
	}

	t.Setenv(EnvKey, "debug")
	if got := FromEnv(); got != LevelDebug {
		t.Errorf("FromEnv() = %q, want %q", got, LevelDebug)
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)
	logger.Info("dropped")
	logger.Warn("kept", Remaining(42))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line written at warn level: %s", out)
	}
	if !strings.Contains(out, `"remaining":42`) {
		t.Errorf("missing remaining attr: %s", out)
	}
}

func TestOpenFileLogger(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "arctimer.log")
	logger, closer, err := OpenFileLogger(path, LevelInfo)
	if err != nil {
		t.Fatalf("OpenFileLogger() error = %v", err)
	}
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestFromContext_Default(t *testing.T) {
	t.Parallel()

	if got := FromContext(t.Context()); got != slog.Default() {
		t.Error("FromContext() without logger should return slog.Default()")
	}
}

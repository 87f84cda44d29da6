package app

import "testing"

// TestDetermineLogLevel verifies the precedence rules.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"verbose and quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit wins", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"explicit is case insensitive", Config{LogLevel: "DEBUG"}, "debug"},
		{"invalid falls back", Config{LogLevel: "loud"}, "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(&tt.config); got != tt.want {
				t.Errorf("determineLogLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestValidateLogLevel verifies level validation.
func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%q) = %q", level, got)
		}
	}
	if got := validateLogLevel("fatal"); got != "info" {
		t.Errorf("validateLogLevel(fatal) = %q, want info", got)
	}
}

// TestNewLogger verifies a logger is built at the resolved level.
func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{Quiet: true, LogFormat: "json", LogOutput: "discard"})
	if logger.GetLevel().String() != "warn" {
		t.Errorf("level = %s, want warn", logger.GetLevel())
	}
}

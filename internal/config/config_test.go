package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TABLEDOM_DOCUMENT", "testdata/doc.html")
	t.Setenv("TABLEDOM_TABLE", "grid")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Document.Path != "testdata/doc.html" {
		t.Errorf("unexpected path: %q", cfg.Document.Path)
	}
	// output defaults to the input document
	if cfg.Document.Output != "testdata/doc.html" {
		t.Errorf("expected output default, got %q", cfg.Document.Output)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadRequired(t *testing.T) {
	t.Setenv("TABLEDOM_DOCUMENT", "")
	t.Setenv("TABLEDOM_TABLE", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for missing required variables")
	}
	if !strings.Contains(err.Error(), "TABLEDOM_DOCUMENT") {
		t.Errorf("error should name the missing variable: %v", err)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}

	for _, tt := range tests {
		got, err := LoggingConfig{Level: tt.level}.SlogLevel()
		if tt.wantErr {
			if err == nil {
				t.Errorf("level %q: expected an error", tt.level)
			}
			continue
		}
		if err != nil {
			t.Errorf("level %q: unexpected error %v", tt.level, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("level %q: got %v, expected %v", tt.level, got, tt.expected)
		}
	}
}

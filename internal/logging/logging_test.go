package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestInitWritesComponentToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "folio.log")
	if err := Init(Config{Level: "debug", Format: "json", File: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	logger := Component("theme")
	logger.Info().Msg("toggled")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"component":"theme"`) {
		t.Fatalf("expected component field, got %s", line)
	}
	if !strings.Contains(line, `"message":"toggled"`) {
		t.Fatalf("expected message, got %s", line)
	}
}

func TestCloseResetsToNop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	if err := Init(Config{Format: "json", File: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if Logger().GetLevel() != zerolog.Disabled {
		t.Fatalf("expected nop logger after Close, got level %v", Logger().GetLevel())
	}
}

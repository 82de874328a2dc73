package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want log.Level
		ok   bool
	}{
		{"", log.InfoLevel, true},
		{"debug", log.DebugLevel, true},
		{"WARN", log.WarnLevel, true},
		{"error", log.ErrorLevel, true},
		{"chatty", log.InfoLevel, false},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.name)
		if (err == nil) != tc.ok {
			t.Errorf("ParseLevel(%q) error = %v, expected ok=%v", tc.name, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestOpenFileWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")

	logger, closer, err := OpenFile(path, "debug")
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Debug("brick destroyed", "points", 10)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "brick destroyed") || !strings.Contains(string(data), "points=10") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenFileLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.log")

	logger, closer, err := OpenFile(path, "warn")
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenFileDiscard(t *testing.T) {
	logger, closer, err := OpenFile("", "")
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := Initialize(&buf, "WARNING"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Log.Infof("hidden %d", 1)
	Log.Warningf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO record written at WARNING level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("WARNING record missing: %q", out)
	}
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	if err := Initialize(&bytes.Buffer{}, "LOUD"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twin.log")

	c, err := Open(path, "DEBUG")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	Log.Debugf("calibrated zero")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "calibrated zero") {
		t.Errorf("log file content = %q", b)
	}

	// Leave the global logger pointed away from the closed file.
	if _, err := Open("", "INFO"); err != nil {
		t.Fatalf("Open discard: %v", err)
	}
}

// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogFilePath(t *testing.T) {
	if got := (Config{}).LogFilePath(); got != "" {
		t.Fatalf("expected no default log file, got %q", got)
	}
	if got := (Config{LogFile: "  logs/benchpage.log "}).LogFilePath(); got != "logs/benchpage.log" {
		t.Fatalf("expected trimmed path, got %q", got)
	}
}

func TestColorEnabled(t *testing.T) {
	if !(Config{}).ColorEnabled() {
		t.Fatal("expected color enabled by default")
	}
	if (Config{NoColor: true}).ColorEnabled() {
		t.Fatal("expected noColor to disable color")
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", Config{Debug: true})
	out := buf.String()
	if !strings.Contains(out, "No config file loaded (using defaults).") {
		t.Fatalf("expected defaults notice, got %s", out)
	}
	if !strings.Contains(out, "Debug:    true") {
		t.Fatalf("expected debug line, got %s", out)
	}
	if !strings.Contains(out, "Log File: (none)") {
		t.Fatalf("expected empty log file line, got %s", out)
	}

	buf.Reset()
	ShowConfig(&buf, "benchpage.json", Config{LogFile: "bp.log", Summary: true})
	out = buf.String()
	if !strings.Contains(out, "Config file: benchpage.json") {
		t.Fatalf("expected config path, got %s", out)
	}
	if !strings.Contains(out, "Summary:  true") || !strings.Contains(out, "Log File: bp.log") {
		t.Fatalf("expected summary and log file lines, got %s", out)
	}
}

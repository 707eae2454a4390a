package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/logging"
)

func TestNewTool(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Tools.Info.TimeFormat = "YYYY"

	tool, _, err := newTool(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "report.csv")
	if err := os.WriteFile(input, []byte("a,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := tool.Run(t.Context(), input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != filepath.Join(dir, "report_info.txt") {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "BASIC INFORMATION") {
		t.Errorf("unexpected report:\n%s", data)
	}
}

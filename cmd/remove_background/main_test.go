package main

import (
	"slices"
	"testing"

	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/logging"
	"github.com/alnah/go-shellmenu/internal/tools"
)

func TestNewTool(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.BaseDir = "base"
	cfg.Tools.Background.Command = []string{"backgroundremover", "-i"}

	tool, _, err := newTool(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rb, ok := tool.(*tools.RemoveBackground)
	if !ok {
		t.Fatalf("expected *tools.RemoveBackground, got %T", tool)
	}
	remover, ok := rb.Remover.(*tools.CommandRemover)
	if !ok {
		t.Fatalf("expected *tools.CommandRemover, got %T", rb.Remover)
	}
	if !slices.Equal(remover.Command, cfg.Tools.Background.Command) || remover.Dir != "base" {
		t.Errorf("remover = %+v", remover)
	}
}

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-shellmenu/internal/assets"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestMarkdownConverter - Style and highlight resolution from config
// ---------------------------------------------------------------------------

func TestMarkdownConverter(t *testing.T) {
	t.Parallel()

	t.Run("default config renders with embedded style", func(t *testing.T) {
		t.Parallel()

		conv, err := MarkdownConverter(config.DefaultConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc, err := conv.ToHTML(context.Background(), "# Title\n", "notes")
		if err != nil {
			t.Fatalf("ToHTML: %v", err)
		}
		if !strings.Contains(doc, "<title>notes</title>") {
			t.Errorf("missing title in %q", doc)
		}
	})

	t.Run("css path is resolved against baseDir", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(base, "styles", "mine.css"), []byte("body{color:#123456}"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg := config.DefaultConfig()
		cfg.BaseDir = base
		cfg.Tools.Markdown.Style = "styles/mine.css"

		conv, err := MarkdownConverter(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc, err := conv.ToHTML(context.Background(), "text", "t")
		if err != nil {
			t.Fatalf("ToHTML: %v", err)
		}
		if !strings.Contains(doc, "#123456") {
			t.Error("custom CSS not inlined")
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Tools.Markdown.Style = "fancy"

		_, err := MarkdownConverter(cfg)
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Errorf("expected ErrStyleNotFound, got %v", err)
		}
	})

	t.Run("unknown highlight style", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Tools.Markdown.HighlightStyle = "no-such-style"

		_, err := MarkdownConverter(cfg)
		if !errors.Is(err, pipeline.ErrUnknownHighlightStyle) {
			t.Errorf("expected ErrUnknownHighlightStyle, got %v", err)
		}
	})

	t.Run("missing assets dir", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Tools.Markdown.AssetsDir = filepath.Join(t.TempDir(), "missing")

		if _, err := MarkdownConverter(cfg); !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Errorf("expected ErrInvalidBasePath, got %v", err)
		}
	})
}

func TestPageOptions(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Tools.Markdown.Page.Orientation = "landscape"
	cfg.Tools.Markdown.Page.Margin = 1

	got := PageOptions(cfg)
	if got.Size != "a4" || got.Orientation != "landscape" || got.Margin != 1 {
		t.Errorf("PageOptions() = %+v", got)
	}
}

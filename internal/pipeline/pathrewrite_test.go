package pipeline

// Notes:
// - Tests RewriteRelativePaths through its public API plus isRelativePath
// - Traversal tests check the observable result (path left as written)

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func testSourceDir() string {
	if runtime.GOOS == "windows" {
		return `C:\docs`
	}
	return "/docs"
}

// ---------------------------------------------------------------------------
// TestRewriteRelativePaths
// ---------------------------------------------------------------------------

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	sourceDir := testSourceDir()

	tests := []struct {
		name      string
		html      string
		sourceDir string
		want      string
	}{
		{name: "relative image", html: `<img src="./images/logo.png">`, sourceDir: sourceDir, want: `src="file:///`},
		{name: "bare relative image", html: `<img src="images/logo.png">`, sourceDir: sourceDir, want: `src="file:///`},
		{name: "relative link", html: `<a href="notes.md">n</a>`, sourceDir: sourceDir, want: `href="file:///`},
		{name: "space escaped", html: `<img src="my pic.png">`, sourceDir: sourceDir, want: `my%20pic.png`},
		{name: "absolute path kept", html: `<img src="/abs/logo.png">`, sourceDir: sourceDir, want: `src="/abs/logo.png"`},
		{name: "https kept", html: `<img src="https://example.com/a.png">`, sourceDir: sourceDir, want: `src="https://example.com/a.png"`},
		{name: "data URI kept", html: `<img src="data:image/png;base64,AA">`, sourceDir: sourceDir, want: `src="data:image/png;base64,AA"`},
		{name: "anchor kept", html: `<a href="#intro">i</a>`, sourceDir: sourceDir, want: `href="#intro"`},
		{name: "mailto kept", html: `<a href="mailto:a@b.c">m</a>`, sourceDir: sourceDir, want: `href="mailto:a@b.c"`},
		{name: "drive path kept", html: `<img src="D:/pics/a.png">`, sourceDir: sourceDir, want: `src="D:/pics/a.png"`},
		{name: "script kept", html: `<script src="./x.js"></script>`, sourceDir: sourceDir, want: `src="./x.js"`},
		{name: "empty source dir", html: `<img src="./logo.png">`, sourceDir: "", want: `src="./logo.png"`},
		{name: "traversal kept", html: `<img src="../../etc/passwd">`, sourceDir: sourceDir, want: `src="../../etc/passwd"`},
		{name: "inner traversal kept", html: `<img src="a/../../secret.png">`, sourceDir: sourceDir, want: `src="a/../../secret.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RewriteRelativePaths() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestRewriteRelativePaths_FullDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := "<!DOCTYPE html><html><head><title>t</title></head><body><img src=\"a.png\"></body></html>"

	got, err := RewriteRelativePaths(in, dir)
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("doctype lost: %q", got)
	}
	wantSuffix := filepath.ToSlash(filepath.Join(dir, "a.png"))
	if !strings.Contains(got, wantSuffix) {
		t.Errorf("RewriteRelativePaths() = %q, want it to reference %q", got, wantSuffix)
	}
}

func TestRewriteRelativePaths_FragmentNotWrapped(t *testing.T) {
	t.Parallel()

	got, err := RewriteRelativePaths(`<p><img src="a.png"></p>`, testSourceDir())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if strings.Contains(got, "<html>") || strings.Contains(got, "<body>") {
		t.Errorf("fragment was wrapped in a document: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestIsRelativePath
// ---------------------------------------------------------------------------

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"img.png", true},
		{"./img.png", true},
		{"../img.png", true},
		{"", false},
		{"#top", false},
		{"HTTP://EXAMPLE.COM", false},
		{"file:///a.png", false},
		{"//cdn/x.png", false},
		{"/abs.png", false},
		{`\\server\share\a.png`, false},
		{`C:\a.png`, false},
	}

	for _, tt := range tests {
		if got := isRelativePath(tt.path); got != tt.want {
			t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

package shellmenu

// Notes:
// - Options.validate: we test field syntax only. Filesystem checks for the
//   scripts directory and launcher are covered in generator_test.go.

import (
	"errors"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestOptions_WithDefaults - Empty fields filled in
// ---------------------------------------------------------------------------

func TestOptions_WithDefaults(t *testing.T) {
	t.Parallel()

	got := Options{}.withDefaults()

	if !slices.Equal(got.Patterns, []string{DefaultPattern}) {
		t.Errorf("Patterns = %v", got.Patterns)
	}
	if got.Menu.Key != DefaultMenuKey || got.Menu.Label != DefaultMenuLabel {
		t.Errorf("Menu = %+v", got.Menu)
	}
	if !slices.Equal(got.Menu.Targets, []string{TargetAllFiles}) {
		t.Errorf("Targets = %v", got.Menu.Targets)
	}
	if got.Encoding != EncodingUTF8 || got.LineEnding != LineEndingLF {
		t.Errorf("Encoding = %q, LineEnding = %q", got.Encoding, got.LineEnding)
	}

	kept := Options{Patterns: []string{"*.py"}, Menu: Menu{Label: "Mine"}}.withDefaults()
	if !slices.Equal(kept.Patterns, []string{"*.py"}) || kept.Menu.Label != "Mine" {
		t.Errorf("set fields must be kept, got %+v", kept)
	}
}

// ---------------------------------------------------------------------------
// TestOptions_Validate - Field syntax
// ---------------------------------------------------------------------------

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Options {
		return Options{ScriptsDir: "tools", LauncherPath: "run_silent.exe"}.withDefaults()
	}

	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr error
	}{
		{"defaults", func(*Options) {}, nil},
		{"empty scripts dir", func(o *Options) { o.ScriptsDir = "" }, ErrEmptyScriptsDir},
		{"empty launcher", func(o *Options) { o.LauncherPath = "" }, ErrEmptyLauncher},
		{"bad pattern", func(o *Options) { o.Patterns = []string{"[a"} }, ErrInvalidPattern},
		{"bad menu key", func(o *Options) { o.Menu.Key = "a[b]" }, ErrInvalidMenuKey},
		{"bad target", func(o *Options) { o.Menu.Targets = []string{`\Directory`} }, ErrInvalidTarget},
		{"bad encoding", func(o *Options) { o.Encoding = "utf-32" }, ErrInvalidEncoding},
		{"encoding is case-insensitive", func(o *Options) { o.Encoding = "UTF-16LE" }, nil},
		{"bad line ending", func(o *Options) { o.LineEnding = "cr" }, ErrInvalidLineEnding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := valid()
			tt.mutate(&o)
			err := o.validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

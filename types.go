package shellmenu

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Encoding constants for the written .reg file.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF16LE = "utf-16le"
)

// Line ending constants for the written .reg file.
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// Menu defaults.
const (
	DefaultMenuKey   = "ContextTools"
	DefaultMenuLabel = "Context Tools"
	TargetAllFiles   = "*"
	TargetDirectory  = "Directory"
	DefaultPattern   = "*.exe"
)

// Menu configures the parent context-menu entry.
type Menu struct {
	Key     string   // registry key segment under <target>\shell
	Label   string   // MUIVerb shown in Explorer
	Icon    string   // absolute icon path; empty omits the Icon value
	Targets []string // class roots under HKEY_CLASSES_ROOT, e.g. "*" or "Directory"
}

// DefaultMenu returns a menu registered for all file types.
func DefaultMenu() Menu {
	return Menu{
		Key:     DefaultMenuKey,
		Label:   DefaultMenuLabel,
		Targets: []string{TargetAllFiles},
	}
}

// Validate checks that the menu can be rendered as valid registry keys.
func (m *Menu) Validate() error {
	if m.Key == "" || strings.ContainsAny(m.Key, "\\[]") || hasControl(m.Key) {
		return fmt.Errorf("%w: %q", ErrInvalidMenuKey, m.Key)
	}
	if len(m.Targets) == 0 {
		return fmt.Errorf("%w: at least one target required", ErrInvalidTarget)
	}
	for _, t := range m.Targets {
		if t == "" || strings.ContainsAny(t, "[]") || hasControl(t) ||
			strings.HasPrefix(t, `\`) || strings.HasSuffix(t, `\`) {
			return fmt.Errorf("%w: %q", ErrInvalidTarget, t)
		}
	}
	return nil
}

// Options is the explicit configuration for one generator run.
// Every path is independently overridable; nothing is compiled in.
type Options struct {
	ScriptsDir   string   // directory scanned for scripts
	LauncherPath string   // dispatcher referenced by every command
	OutputPath   string   // .reg file written by Generate
	Patterns     []string // glob filters on file names (default "*.exe")
	Menu         Menu
	Encoding     string // "utf-8" (default) or "utf-16le"
	LineEnding   string // "lf" (default) or "crlf"
}

// withDefaults returns a copy of o with empty fields filled in.
func (o Options) withDefaults() Options {
	if len(o.Patterns) == 0 {
		o.Patterns = []string{DefaultPattern}
	}
	if o.Menu.Key == "" {
		o.Menu.Key = DefaultMenuKey
	}
	if o.Menu.Label == "" {
		o.Menu.Label = DefaultMenuLabel
	}
	if len(o.Menu.Targets) == 0 {
		o.Menu.Targets = []string{TargetAllFiles}
	}
	if o.Encoding == "" {
		o.Encoding = EncodingUTF8
	}
	if o.LineEnding == "" {
		o.LineEnding = LineEndingLF
	}
	return o
}

// validate checks field syntax. Existence of the scripts directory and the
// launcher is checked separately since it touches the filesystem.
func (o *Options) validate() error {
	if o.ScriptsDir == "" {
		return ErrEmptyScriptsDir
	}
	if o.LauncherPath == "" {
		return ErrEmptyLauncher
	}
	for _, p := range o.Patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
		}
	}
	if err := o.Menu.Validate(); err != nil {
		return err
	}
	if !isValidEncoding(o.Encoding) {
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEncoding, o.Encoding, EncodingUTF8, EncodingUTF16LE)
	}
	if !isValidLineEnding(o.LineEnding) {
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidLineEnding, o.LineEnding, LineEndingLF, LineEndingCRLF)
	}
	return nil
}

func isValidEncoding(enc string) bool {
	switch strings.ToLower(enc) {
	case EncodingUTF8, EncodingUTF16LE:
		return true
	}
	return false
}

func isValidLineEnding(le string) bool {
	switch strings.ToLower(le) {
	case LineEndingLF, LineEndingCRLF:
		return true
	}
	return false
}

// hasControl reports whether s contains a character that would break a
// line-oriented .reg document.
func hasControl(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r < 0x20 || r == 0x7f
	})
}

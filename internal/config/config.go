package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-shellmenu"
	"github.com/alnah/go-shellmenu/internal/dateutil"
	"github.com/alnah/go-shellmenu/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name every executable looks up when no explicit
// path is given.
const DefaultName = "shellmenu"

// DirName is the folder under os.UserConfigDir searched for config files.
const DirName = "go-shellmenu"

// Field length limits.
const (
	MaxPathLength    = 32767 // Windows extended-length path limit
	MaxLabelLength   = 260   // Explorer truncates long verbs anyway
	MaxPatternLength = 255
	MaxFooterLength  = 500
)

// Config holds the settings shared by the generator, the launcher and the
// tools. Relative paths are resolved against BaseDir.
type Config struct {
	BaseDir   string          `yaml:"baseDir"`
	Menu      MenuConfig      `yaml:"menu"`
	Generator GeneratorConfig `yaml:"generator"`
	Launcher  LauncherConfig  `yaml:"launcher"`
	Tools     ToolsConfig     `yaml:"tools"`
	Log       LogConfig       `yaml:"log"`

	// Source is the file the config was loaded from, empty for defaults.
	Source string `yaml:"-"`
}

// MenuConfig defines the parent context-menu entry.
type MenuConfig struct {
	Key     string   `yaml:"key"`
	Label   string   `yaml:"label"`
	Icon    string   `yaml:"icon"`    // Empty = no icon
	Targets []string `yaml:"targets"` // "*", "Directory", ".pdf", ...
}

// GeneratorConfig defines where the registry generator reads and writes.
type GeneratorConfig struct {
	ScriptsDir string   `yaml:"scriptsDir"`
	Launcher   string   `yaml:"launcher"`
	Output     string   `yaml:"output"`
	Patterns   []string `yaml:"patterns"`
	Encoding   string   `yaml:"encoding"`   // "utf-8" or "utf-16le"
	LineEnding string   `yaml:"lineEnding"` // "lf" or "crlf"
}

// LauncherConfig drives run_silent.
type LauncherConfig struct {
	WorkDir      string        `yaml:"workDir"` // Empty = BaseDir, then the launcher's own folder
	Interpreters []Interpreter `yaml:"interpreters"`
}

// Interpreter maps a script extension to the command that runs it.
// The script path and target are appended after Command.
type Interpreter struct {
	Ext     string   `yaml:"ext"`
	Command []string `yaml:"command"`
}

// ToolsConfig groups per-tool settings.
type ToolsConfig struct {
	PDFImages  PDFImagesConfig  `yaml:"pdfImages"`
	Markdown   MarkdownConfig   `yaml:"markdown"`
	Background BackgroundConfig `yaml:"background"`
	Info       InfoConfig       `yaml:"info"`
}

// PDFImagesConfig defines page rasterization.
type PDFImagesConfig struct {
	DPI     int `yaml:"dpi"`
	Quality int `yaml:"quality"` // JPEG quality 1-100
	Workers int `yaml:"workers"` // 0 = auto

	// Compose also writes an image-only PDF of the pages.
	Compose        bool   `yaml:"compose"`
	ComposeQuality int    `yaml:"composeQuality"`
	Footer         string `yaml:"footer"`
}

// MarkdownConfig defines HTML and PDF rendering of Markdown files.
type MarkdownConfig struct {
	Style          string     `yaml:"style"`          // Embedded style name or CSS file path
	AssetsDir      string     `yaml:"assetsDir"`      // Custom styles/ and templates/; empty = embedded only
	HighlightStyle string     `yaml:"highlightStyle"` // Chroma style name
	Timeout        string     `yaml:"timeout"`        // Go duration, e.g. "30s"
	Page           PageConfig `yaml:"page"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// BackgroundConfig defines the background removal command. The input and
// output paths are appended.
type BackgroundConfig struct {
	Command []string `yaml:"command"`
}

// InfoConfig defines the info report.
type InfoConfig struct {
	TimeFormat string `yaml:"timeFormat"` // dateutil layout
}

// LogConfig defines logging for every executable.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
	File  string `yaml:"file"`  // Empty = stderr only
}

// Page sizes, orientations and margins accepted by Validate.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"

	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"

	MinMargin = 0.0
	MaxMargin = 3.0
)

var (
	validPageSizes    = []string{PageSizeLetter, PageSizeA4, PageSizeLegal}
	validOrientations = []string{OrientationPortrait, OrientationLandscape}
	validLogLevels    = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Menu: MenuConfig{
			Key:     shellmenu.DefaultMenuKey,
			Label:   shellmenu.DefaultMenuLabel,
			Targets: []string{shellmenu.TargetAllFiles},
		},
		Generator: GeneratorConfig{
			ScriptsDir: "tools",
			Launcher:   "run_silent.exe",
			Output:     "context_menu.reg",
			Patterns:   []string{shellmenu.DefaultPattern},
			Encoding:   shellmenu.EncodingUTF8,
			LineEnding: shellmenu.LineEndingLF,
		},
		Launcher: LauncherConfig{
			Interpreters: []Interpreter{
				{Ext: ".py", Command: []string{"uv", "run"}},
				{Ext: ".ps1", Command: []string{"powershell", "-NoProfile", "-ExecutionPolicy", "Bypass", "-File"}},
			},
		},
		Tools: ToolsConfig{
			PDFImages: PDFImagesConfig{
				DPI:            150,
				Quality:        90,
				ComposeQuality: 75,
				Footer:         "Generated automatically from page images - no original text",
			},
			Markdown: MarkdownConfig{
				Style:          "default",
				HighlightStyle: "github",
				Timeout:        "30s",
				Page: PageConfig{
					Size:        PageSizeA4,
					Orientation: OrientationPortrait,
					Margin:      0.5,
				},
			},
			Background: BackgroundConfig{Command: []string{"rembg", "i"}},
			Info:       InfoConfig{TimeFormat: "YYYY-MM-DD HH:mm:ss"},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks value ranges and field lengths.
// Called automatically by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("baseDir", c.BaseDir, MaxPathLength); err != nil {
		return err
	}

	// Menu
	if err := validateFieldLength("menu.label", c.Menu.Label, MaxLabelLength); err != nil {
		return err
	}
	if err := validateFieldLength("menu.icon", c.Menu.Icon, MaxPathLength); err != nil {
		return err
	}
	menu := c.ShellMenu()
	if err := menu.Validate(); err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	// Generator
	for field, value := range map[string]string{
		"generator.scriptsDir": c.Generator.ScriptsDir,
		"generator.launcher":   c.Generator.Launcher,
		"generator.output":     c.Generator.Output,
	} {
		if err := validateFieldLength(field, value, MaxPathLength); err != nil {
			return err
		}
	}
	for i, p := range c.Generator.Patterns {
		if err := validateFieldLength(fmt.Sprintf("generator.patterns[%d]", i), p, MaxPatternLength); err != nil {
			return err
		}
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("%w: generator.patterns[%d] %q: %v", ErrInvalidValue, i, p, err)
		}
	}
	switch strings.ToLower(c.Generator.Encoding) {
	case "", shellmenu.EncodingUTF8, shellmenu.EncodingUTF16LE:
	default:
		return fmt.Errorf("%w: generator.encoding %q (must be %s or %s)",
			ErrInvalidValue, c.Generator.Encoding, shellmenu.EncodingUTF8, shellmenu.EncodingUTF16LE)
	}
	switch strings.ToLower(c.Generator.LineEnding) {
	case "", shellmenu.LineEndingLF, shellmenu.LineEndingCRLF:
	default:
		return fmt.Errorf("%w: generator.lineEnding %q (must be %s or %s)",
			ErrInvalidValue, c.Generator.LineEnding, shellmenu.LineEndingLF, shellmenu.LineEndingCRLF)
	}

	// Launcher
	for i, in := range c.Launcher.Interpreters {
		if !strings.HasPrefix(in.Ext, ".") || len(in.Ext) < 2 {
			return fmt.Errorf("%w: launcher.interpreters[%d].ext %q must start with a dot", ErrInvalidValue, i, in.Ext)
		}
		if len(in.Command) == 0 || in.Command[0] == "" {
			return fmt.Errorf("%w: launcher.interpreters[%d].command is empty", ErrInvalidValue, i)
		}
	}

	// Tools
	pi := c.Tools.PDFImages
	if pi.DPI < 1 || pi.DPI > 1200 {
		return fmt.Errorf("%w: tools.pdfImages.dpi must be between 1 and 1200, got %d", ErrInvalidValue, pi.DPI)
	}
	if pi.Quality < 1 || pi.Quality > 100 {
		return fmt.Errorf("%w: tools.pdfImages.quality must be between 1 and 100, got %d", ErrInvalidValue, pi.Quality)
	}
	if pi.Compose && (pi.ComposeQuality < 1 || pi.ComposeQuality > 100) {
		return fmt.Errorf("%w: tools.pdfImages.composeQuality must be between 1 and 100, got %d", ErrInvalidValue, pi.ComposeQuality)
	}
	if pi.Workers < 0 {
		return fmt.Errorf("%w: tools.pdfImages.workers cannot be negative", ErrInvalidValue)
	}
	if err := validateFieldLength("tools.pdfImages.footer", pi.Footer, MaxFooterLength); err != nil {
		return err
	}

	md := c.Tools.Markdown
	if err := validateFieldLength("tools.markdown.assetsDir", md.AssetsDir, MaxPathLength); err != nil {
		return err
	}
	if md.Timeout != "" {
		if d, err := time.ParseDuration(md.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("%w: tools.markdown.timeout %q is not a positive duration", ErrInvalidValue, md.Timeout)
		}
	}
	if md.Page.Size != "" && !slices.Contains(validPageSizes, strings.ToLower(md.Page.Size)) {
		return fmt.Errorf("%w: tools.markdown.page.size %q (must be %s)",
			ErrInvalidValue, md.Page.Size, strings.Join(validPageSizes, ", "))
	}
	if md.Page.Orientation != "" && !slices.Contains(validOrientations, strings.ToLower(md.Page.Orientation)) {
		return fmt.Errorf("%w: tools.markdown.page.orientation %q (must be %s)",
			ErrInvalidValue, md.Page.Orientation, strings.Join(validOrientations, ", "))
	}
	if md.Page.Margin < MinMargin || md.Page.Margin > MaxMargin {
		return fmt.Errorf("%w: tools.markdown.page.margin must be between %.1f and %.1f, got %.2f",
			ErrInvalidValue, MinMargin, MaxMargin, md.Page.Margin)
	}

	if len(c.Tools.Background.Command) == 0 || c.Tools.Background.Command[0] == "" {
		return fmt.Errorf("%w: tools.background.command is empty", ErrInvalidValue)
	}

	if tf := c.Tools.Info.TimeFormat; tf != "" {
		if _, err := dateutil.Format(time.Time{}, tf); err != nil {
			return fmt.Errorf("tools.info.timeFormat: %w", err)
		}
	}

	// Log
	if c.Log.Level != "" && !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level %q (must be %s)", ErrInvalidValue, c.Log.Level, strings.Join(validLogLevels, ", "))
	}
	if err := validateFieldLength("log.file", c.Log.File, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// ResolvePath makes p absolute against BaseDir. Empty and absolute paths are
// returned unchanged, as are relative paths when BaseDir is empty.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// ShellMenu converts the menu section into generator menu settings,
// resolving the icon path.
func (c *Config) ShellMenu() shellmenu.Menu {
	return shellmenu.Menu{
		Key:     c.Menu.Key,
		Label:   c.Menu.Label,
		Icon:    c.ResolvePath(c.Menu.Icon),
		Targets: slices.Clone(c.Menu.Targets),
	}
}

// GeneratorOptions converts the config into generator options with every
// path resolved against BaseDir.
func (c *Config) GeneratorOptions() shellmenu.Options {
	return shellmenu.Options{
		ScriptsDir:   c.ResolvePath(c.Generator.ScriptsDir),
		LauncherPath: c.ResolvePath(c.Generator.Launcher),
		OutputPath:   c.ResolvePath(c.Generator.Output),
		Patterns:     slices.Clone(c.Generator.Patterns),
		Menu:         c.ShellMenu(),
		Encoding:     c.Generator.Encoding,
		LineEnding:   c.Generator.LineEnding,
	}
}

// InterpreterFor returns the command configured for a script extension.
// Matching is case-insensitive.
func (c *Config) InterpreterFor(ext string) ([]string, bool) {
	for _, in := range c.Launcher.Interpreters {
		if strings.EqualFold(in.Ext, ext) {
			return in.Command, true
		}
	}
	return nil, false
}

// MarkdownTimeout returns the parsed markdown timeout, or fallback when unset.
func (c *Config) MarkdownTimeout(fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(c.Tools.Markdown.Timeout); err == nil && d > 0 {
		return d
	}
	return fallback
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFile(configPath, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if errors.Is(err, yamlutil.ErrEmptyDocument) {
			cfg.Source = configPath
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	cfg.Source = configPath

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}

// LoadOptional loads nameOrPath like LoadConfig but falls back to the
// defaults when no file is found. Parse and validation errors are returned.
func LoadOptional(nameOrPath string) (*Config, error) {
	cfg, err := LoadConfig(nameOrPath)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save writes cfg as YAML to path.
func Save(cfg *Config, path string) error {
	data, err := yamlutil.Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- config is not secret
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <UserConfigDir>/go-shellmenu/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, DirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

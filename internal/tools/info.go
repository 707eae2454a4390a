package tools

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/alnah/go-shellmenu/internal/dateutil"
)

// GenerateInfoName is the executable name of the metadata reporter.
const GenerateInfoName = "generate_info"

// DefaultInfoTimeFormat is the dateutil layout used for report timestamps.
const DefaultInfoTimeFormat = "YYYY-MM-DD HH:mm:ss"

const (
	ruleWide   = "============================================================"
	ruleNarrow = "------------------------------"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// OSInspector reads metadata from the local file system.
type OSInspector struct{}

// Stat implements Inspector.
func (OSInspector) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// ReadDir implements Inspector.
func (OSInspector) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }

// GenerateInfo writes a plain-text metadata report next to the selected
// file ("<stem>_info.txt") or folder ("<name>_info.txt"). Details that
// cannot be read become an "unavailable" line instead of failing the run.
type GenerateInfo struct {
	Inspector  Inspector // nil = OSInspector
	TimeFormat string    // dateutil layout or preset; empty = DefaultInfoTimeFormat

	Now        func() time.Time
	Getwd      func() (string, error)
	Executable func() (string, error)

	Logger *log.Logger
}

// Name implements Tool.
func (t *GenerateInfo) Name() string { return GenerateInfoName }

// Run implements Tool.
func (t *GenerateInfo) Run(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", input, err)
	}

	info, statErr := t.inspector().Stat(abs)
	if errors.Is(statErr, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, abs)
	}

	report, err := t.Report(input, abs, info, statErr)
	if err != nil {
		return "", err
	}

	out := InfoPath(abs, info)
	if err := writeOutput(out, []byte(report)); err != nil {
		return "", err
	}
	if t.Logger != nil {
		t.Logger.Info("report written", "path", out)
	}
	return out, nil
}

// InfoPath names the report for abs: "<stem>_info.txt" for files and
// "<name>_info.txt" for everything else, in the parent directory.
func InfoPath(abs string, info fs.FileInfo) string {
	name := filepath.Base(abs)
	if info != nil && info.Mode().IsRegular() {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if name == "" || name == string(filepath.Separator) || name == "." {
		name = "root"
	}
	return filepath.Join(filepath.Dir(abs), name+"_info.txt")
}

// Report renders the report text. info may be nil when statErr is set.
func (t *GenerateInfo) Report(argument, abs string, info fs.FileInfo, statErr error) (string, error) {
	layout := t.TimeFormat
	if layout == "" {
		layout = DefaultInfoTimeFormat
	}
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	generated, err := dateutil.Format(now(), layout)
	if err != nil {
		return "", err
	}
	stamp := func(tm time.Time) string {
		s, _ := dateutil.Format(tm, layout)
		return s
	}

	cwd := valueOr(t.Getwd, os.Getwd)
	exe := valueOr(t.Executable, os.Executable)

	isFile := info != nil && info.Mode().IsRegular()
	isDir := info != nil && info.IsDir()

	var b reportBuilder
	b.line(ruleWide)
	b.line("DETAILED FILE/FOLDER INFORMATION")
	b.line(ruleWide)
	b.field("Generated", generated)
	b.field("Working directory", cwd)
	b.blank()

	b.section("BASIC INFORMATION")
	b.field("Name", filepath.Base(abs))
	b.field("Type", kindOf(info))
	b.field("Exists", yesNo(info != nil || !errors.Is(statErr, fs.ErrNotExist)))
	if isFile {
		b.field("Extension", filepath.Ext(abs))
		b.field("Stem (name without extension)", strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)))
	}
	if statErr != nil {
		b.field("Status", unavailable(statErr))
	}
	b.blank()

	b.section("PATH FORMATS (for easy copying)")
	b.field("Original argument", argument)
	b.field("Absolute path (native)", abs)
	b.field("Forward slashes (/)", strings.ReplaceAll(abs, `\`, "/"))
	b.field(`Backslashes (\)`, strings.ReplaceAll(abs, "/", `\`))
	b.field(`Escaped backslashes (\\)`, strings.ReplaceAll(strings.ReplaceAll(abs, "/", `\`), `\`, `\\`))
	parent := filepath.Dir(abs)
	b.field("Parent directory", parent)
	b.field("Parent (forward slashes)", strings.ReplaceAll(parent, `\`, "/"))
	b.field("Parent (escaped backslashes)", strings.ReplaceAll(strings.ReplaceAll(parent, "/", `\`), `\`, `\\`))
	b.blank()

	switch {
	case isFile:
		b.section("FILE DETAILS")
		t.fileDetails(&b, abs, info, stamp)
		b.blank()
	case isDir:
		b.section("DIRECTORY DETAILS")
		t.dirDetails(&b, abs)
		b.blank()
	}

	b.section("SYSTEM INFORMATION")
	b.field("Operating system", runtime.GOOS+"/"+runtime.GOARCH)
	b.field("Path separator", "'"+string(filepath.Separator)+"'")
	b.field("Current working directory", cwd)
	b.field("Executable", exe)
	b.field("Go version", runtime.Version())
	b.blank()

	b.line(ruleWide)
	b.line("End of information")
	b.line(ruleWide)

	return b.String(), nil
}

func (t *GenerateInfo) fileDetails(b *reportBuilder, abs string, info fs.FileInfo, stamp func(time.Time) string) {
	size := info.Size()
	b.field("Size", fmt.Sprintf("%s (%s bytes)", FormatSize(size), GroupDigits(size)))

	created, accessed, ok := fileTimes(info)
	if ok {
		b.field("Created", stamp(created))
	} else {
		b.field("Created", "unavailable")
	}
	b.field("Modified", stamp(info.ModTime()))
	if ok {
		b.field("Last accessed", stamp(accessed))
	} else {
		b.field("Last accessed", "unavailable")
	}

	m, err := mimetype.DetectFile(abs)
	if err != nil {
		b.field("MIME type", unavailable(err))
		return
	}
	b.field("MIME type", m.String())

	if m.Is("application/pdf") {
		if n, err := pdfPageCount(abs); err != nil {
			b.field("PDF pages", unavailable(err))
		} else {
			b.field("PDF pages", fmt.Sprint(n))
		}
	}
}

func (t *GenerateInfo) dirDetails(b *reportBuilder, abs string) {
	entries, err := t.inspector().ReadDir(abs)
	if err != nil {
		b.field("Directory details", unavailable(err))
		return
	}

	var files, dirs int
	var total int64
	for _, e := range entries {
		if e.IsDir() {
			dirs++
			continue
		}
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files++
		total += info.Size()
	}

	b.field("Total items", fmt.Sprint(len(entries)))
	b.field("Files", fmt.Sprint(files))
	b.field("Subdirectories", fmt.Sprint(dirs))
	b.field("Total size", fmt.Sprintf("%s (%s bytes)", FormatSize(total), GroupDigits(total)))
}

func (t *GenerateInfo) inspector() Inspector {
	if t.Inspector == nil {
		return OSInspector{}
	}
	return t.Inspector
}

// FormatSize renders n bytes with two decimals in the largest unit that
// keeps the value under 1024: 1536 -> "1.50 KB". Zero is "0 B".
func FormatSize(n int64) string {
	if n == 0 {
		return "0 B"
	}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", v, sizeUnits[i])
}

// GroupDigits renders n with comma thousands separators: 1234567 -> "1,234,567".
func GroupDigits(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// pdfPageCount reads the page count. The parser panics on some malformed
// files, which is reported as an error.
func pdfPageCount(path string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	return r.NumPage(), nil
}

func kindOf(info fs.FileInfo) string {
	switch {
	case info == nil:
		return "Unknown"
	case info.Mode().IsRegular():
		return "File"
	case info.IsDir():
		return "Directory"
	default:
		return "Other"
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// unavailable renders the placeholder used when a detail cannot be read.
func unavailable(err error) string {
	if errors.Is(err, fs.ErrPermission) {
		return "unavailable (permission denied)"
	}
	return "unavailable (" + err.Error() + ")"
}

func valueOr(fn, fallback func() (string, error)) string {
	if fn == nil {
		fn = fallback
	}
	v, err := fn()
	if err != nil {
		return unavailable(err)
	}
	return v
}

type reportBuilder struct {
	strings.Builder
}

func (b *reportBuilder) line(s string) {
	b.WriteString(s)
	b.WriteByte('\n')
}

func (b *reportBuilder) blank() { b.WriteByte('\n') }

func (b *reportBuilder) section(title string) {
	b.line(title)
	b.line(ruleNarrow)
}

func (b *reportBuilder) field(label, value string) {
	b.line(label + ": " + value)
}

// Compile-time interface checks.
var (
	_ Tool      = (*GenerateInfo)(nil)
	_ Inspector = OSInspector{}
)

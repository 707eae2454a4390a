package shellmenu

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ScriptEntry describes one discovered script and the menu item it becomes.
// Entries are derived from the scripts directory on every run and never stored.
type ScriptEntry struct {
	FileName     string // on-disk name, including extension
	Identifier   string // FileName without extension, used as registry key segment
	DisplayName  string // menu label derived from Identifier
	ScriptPath   string // absolute path of the script
	LauncherPath string // absolute path of the dispatcher, shared by all entries
}

// DeriveIdentifier strips the final extension from a file name.
// Only the base name is considered, so directories in fileName are ignored.
func DeriveIdentifier(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DisplayName converts an identifier into a menu label: underscores become
// spaces and every run of letters is title-cased, lowering the rest of the
// run. Digits and punctuation start a new run.
//
// Examples:
//   - "convert_pdf_into_images" -> "Convert Pdf Into Images"
//   - "remove_background"       -> "Remove Background"
//   - "HEIF_to_JPG"             -> "Heif To Jpg"
//   - "pdf2image"               -> "Pdf2Image"
func DisplayName(identifier string) string {
	spaced := strings.ReplaceAll(identifier, "_", " ")
	// A Caser keeps state between calls, so each call gets its own.
	title := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(spaced))
	for len(spaced) > 0 {
		i := strings.IndexFunc(spaced, func(r rune) bool { return !unicode.IsLetter(r) })
		if i == 0 {
			j := strings.IndexFunc(spaced, unicode.IsLetter)
			if j < 0 {
				j = len(spaced)
			}
			b.WriteString(spaced[:j])
			spaced = spaced[j:]
			continue
		}
		if i < 0 {
			i = len(spaced)
		}
		b.WriteString(title.String(spaced[:i]))
		spaced = spaced[i:]
	}
	return b.String()
}

// normalizeIdentifier returns the collision key for an identifier.
// Registry key names are case-insensitive, so "Foo" and "foo" collide.
func normalizeIdentifier(identifier string) string {
	return strings.ToLower(identifier)
}

// newScriptEntry derives all entry fields from a file in dir.
func newScriptEntry(dir, fileName, launcherPath string) (ScriptEntry, error) {
	scriptPath, err := filepath.Abs(filepath.Join(dir, fileName))
	if err != nil {
		return ScriptEntry{}, err
	}

	identifier := DeriveIdentifier(fileName)
	return ScriptEntry{
		FileName:     fileName,
		Identifier:   identifier,
		DisplayName:  DisplayName(identifier),
		ScriptPath:   scriptPath,
		LauncherPath: launcherPath,
	}, nil
}

package shellmenu

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// FormatHeader is the first line regedit requires in a .reg file.
const FormatHeader = "Windows Registry Editor Version 5.00"

// Placeholder is replaced by Explorer with the right-clicked path.
const Placeholder = "%1"

const classesRoot = "HKEY_CLASSES_ROOT"

// RegistryDocument is the full .reg artifact: a format header, then for each
// menu target one parent block followed by one block per entry.
type RegistryDocument struct {
	Menu    Menu
	Entries []ScriptEntry
}

// parentKey returns the parent menu key for a target class.
func (m *Menu) parentKey(target string) string {
	return classesRoot + `\` + target + `\shell\` + m.Key
}

// String renders the document with LF line endings.
func (d *RegistryDocument) String() string {
	var b strings.Builder
	b.WriteString(FormatHeader)
	b.WriteString("\n")

	for _, target := range d.Menu.Targets {
		parent := d.Menu.parentKey(target)

		b.WriteString("\n; ---------- PARENT MENU ----------\n")
		fmt.Fprintf(&b, "[%s]\n", parent)
		fmt.Fprintf(&b, "\"MUIVerb\"=\"%s\"\n", EscapeValue(d.Menu.Label))
		if d.Menu.Icon != "" {
			fmt.Fprintf(&b, "\"Icon\"=\"%s\"\n", EscapeValue(d.Menu.Icon))
		}
		b.WriteString("\"SubCommands\"=\"\"\n")

		for _, e := range d.Entries {
			itemKey := parent + `\shell\` + e.Identifier
			fmt.Fprintf(&b, "\n; ---------- ITEM %s ----------\n", e.Identifier)
			fmt.Fprintf(&b, "[%s]\n", itemKey)
			fmt.Fprintf(&b, "@=\"%s\"\n", EscapeValue(e.DisplayName))
			b.WriteString("\n")
			fmt.Fprintf(&b, "[%s\\command]\n", itemKey)
			fmt.Fprintf(&b, "@=\"%s\"\n", e.command())
		}
	}

	return b.String()
}

// command renders the escaped command value for an entry.
func (e *ScriptEntry) command() string {
	return quoteArg(e.LauncherPath) + " " + quoteArg(e.ScriptPath) + " " + quoteArg(Placeholder)
}

// Encode renders the document with the given encoding and line ending.
func (d *RegistryDocument) Encode(encoding, lineEnding string) ([]byte, error) {
	return encodeText(d.String(), encoding, lineEnding)
}

// RenderUninstall renders a .reg document removing every parent key of menu.
// Deleting the parent removes all child items with it.
func RenderUninstall(menu Menu) string {
	var b strings.Builder
	b.WriteString(FormatHeader)
	b.WriteString("\n")
	for _, target := range menu.Targets {
		fmt.Fprintf(&b, "\n[-%s]\n", menu.parentKey(target))
	}
	return b.String()
}

// encodeText converts LF text into the requested line ending and encoding.
// UTF-16LE output carries a BOM, which regedit expects for that encoding.
func encodeText(text, encoding, lineEnding string) ([]byte, error) {
	switch strings.ToLower(lineEnding) {
	case "", LineEndingLF:
	case LineEndingCRLF:
		text = strings.ReplaceAll(text, "\n", "\r\n")
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLineEnding, lineEnding)
	}

	switch strings.ToLower(encoding) {
	case "", EncodingUTF8:
		return []byte(text), nil
	case EncodingUTF16LE:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		out, err := enc.Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, encoding)
	}
}

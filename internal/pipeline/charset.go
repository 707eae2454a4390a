package pipeline

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Charset names reported by DecodeText.
const (
	CharsetUTF8    = "UTF-8"
	CharsetUTF16LE = "UTF-16LE"
	CharsetUTF16BE = "UTF-16BE"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts data to UTF-8 and reports the charset it was read as.
// A byte order mark wins; valid UTF-8 is returned unchanged; anything else
// goes through charset detection. Undetectable input is returned as-is.
func DecodeText(data []byte) (string, string) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), CharsetUTF8
	case bytes.HasPrefix(data, bomUTF16LE):
		if s, ok := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data); ok {
			return s, CharsetUTF16LE
		}
	case bytes.HasPrefix(data, bomUTF16BE):
		if s, ok := decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data); ok {
			return s, CharsetUTF16BE
		}
	}

	if utf8.Valid(data) {
		return string(data), CharsetUTF8
	}

	results, err := chardet.NewTextDetector().DetectAll(data)
	if err == nil {
		best, bestCharset, bestScore := "", "", -1
		for _, r := range results {
			enc := lookupEncoding(r.Charset)
			if enc == nil {
				continue
			}
			s, ok := decodeWith(enc, data)
			if !ok {
				continue
			}
			if score := scoreDecoded(s, r.Confidence); score > bestScore {
				best, bestCharset, bestScore = s, r.Charset, score
			}
		}
		if bestScore >= 0 {
			return best, bestCharset
		}
	}

	// Markdown written by Windows editors is most often cp1252.
	if s, ok := decodeWith(charmap.Windows1252, data); ok {
		return s, "windows-1252"
	}
	return string(data), CharsetUTF8
}

func decodeWith(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// scoreDecoded favors detector confidence and penalizes replacement
// characters and stray control characters in the decoded text.
func scoreDecoded(s string, confidence int) int {
	score := confidence * 10
	for _, r := range s {
		switch {
		case r == utf8.RuneError:
			score -= 50
		case r < 0x20 && r != '\n' && r != '\r' && r != '\t':
			score -= 20
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// lookupEncoding maps a chardet charset name to an x/text encoding. Only
// charsets a Markdown file plausibly uses on Windows are listed.
func lookupEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(charset)) {
	case "utf8", "ascii", "usascii":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "iso88592":
		return charmap.ISO8859_2
	case "iso88595":
		return charmap.ISO8859_5
	case "iso88597":
		return charmap.ISO8859_7
	case "iso88599":
		return charmap.ISO8859_9
	case "iso885915":
		return charmap.ISO8859_15
	case "windows1250":
		return charmap.Windows1250
	case "windows1251":
		return charmap.Windows1251
	case "windows1252":
		return charmap.Windows1252
	case "windows1253":
		return charmap.Windows1253
	case "windows1254":
		return charmap.Windows1254
	case "koi8r":
		return charmap.KOI8R
	}
	return nil
}

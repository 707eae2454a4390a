package shellmenu

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEscapeValue - .reg string value escaping
// ---------------------------------------------------------------------------

func TestEscapeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"windows path", `C:\Users\me\tools\run_silent.exe`, `C:\\Users\\me\\tools\\run_silent.exe`},
		{"unc path", `\\server\share\x.exe`, `\\\\server\\share\\x.exe`},
		{"quotes", `say "hi"`, `say \"hi\"`},
		{"backslash before quote", `a\"b`, `a\\\"b`},
		{"plain text", "Context Tools", "Context Tools"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeValue(tt.input); got != tt.want {
				t.Errorf("EscapeValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeValue_BackslashCountDoubles(t *testing.T) {
	t.Parallel()

	paths := []string{
		`C:\a`,
		`C:\Program Files\Context Tools\tools\markdown_to_pdf.exe`,
		`\\?\C:\very\long\path`,
		`D:\`,
	}

	for _, p := range paths {
		k := strings.Count(p, `\`)
		got := EscapeValue(p)
		if n := strings.Count(got, `\`); n != 2*k {
			t.Errorf("EscapeValue(%q) has %d backslashes, want %d", p, n, 2*k)
		}
	}
}

func TestEscapeValue_NoUnescapedQuotes(t *testing.T) {
	t.Parallel()

	got := EscapeValue(`C:\odd "dir"\file".exe`)
	for i := 0; i < len(got); i++ {
		if got[i] != '"' {
			continue
		}
		// Count preceding backslashes: an odd count means the quote is escaped.
		n := 0
		for j := i - 1; j >= 0 && got[j] == '\\'; j-- {
			n++
		}
		if n%2 == 0 {
			t.Fatalf("unescaped quote at %d in %q", i, got)
		}
	}
}

func TestQuoteArg(t *testing.T) {
	t.Parallel()

	if got, want := quoteArg(`C:\x.exe`), `\"C:\\x.exe\"`; got != want {
		t.Errorf("quoteArg = %q, want %q", got, want)
	}
	if got, want := quoteArg(Placeholder), `\"%1\"`; got != want {
		t.Errorf("quoteArg(Placeholder) = %q, want %q", got, want)
	}
}

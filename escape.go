package shellmenu

import "strings"

// valueEscaper applies the .reg string value rules: a backslash is written as
// two backslashes and a double quote is preceded by a backslash.
var valueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EscapeValue escapes s for use inside a quoted .reg string value.
//
// Examples:
//   - `C:\tools\run.exe` -> `C:\\tools\\run.exe`
//   - `say "hi"`         -> `say \"hi\"`
func EscapeValue(s string) string {
	return valueEscaper.Replace(s)
}

// quoteArg renders a command-line argument as it appears inside a .reg
// command value: escaped content wrapped in escaped double quotes.
func quoteArg(s string) string {
	return `\"` + EscapeValue(s) + `\"`
}

// Package dateutil converts readable date/time layouts such as
// "YYYY-MM-DD HH:mm:ss" into Go time layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidLayout indicates an invalid layout string.
var ErrInvalidLayout = errors.New("invalid date layout")

// MaxLayoutLength limits layout string length.
const MaxLayoutLength = 50

// layoutTokens maps readable tokens to Go layout components.
// Ordered by length descending for greedy matching. Tokens are case-sensitive:
// MM is the month, mm the minutes.
var layoutTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Presets provides named shortcuts for common layouts.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"datetime": "YYYY-MM-DD HH:mm:ss",
}

// ParseLayout converts a readable layout to Go's time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss.
// Use brackets to escape literal text: [at] preserves "at" literally.
// Any non-token characters outside brackets are preserved as literals.
func ParseLayout(layout string) (string, error) {
	if layout == "" {
		return "", fmt.Errorf("%w: layout cannot be empty", ErrInvalidLayout)
	}
	if len(layout) > MaxLayoutLength {
		return "", fmt.Errorf("%w: layout exceeds %d characters", ErrInvalidLayout, MaxLayoutLength)
	}

	var result strings.Builder
	result.Grow(len(layout) + 10)

	i := 0
	for i < len(layout) {
		if layout[i] == '[' {
			end := strings.Index(layout[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidLayout, i)
			}
			result.WriteString(layout[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range layoutTokens {
			if strings.HasPrefix(layout[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(layout[i])
			i++
		}
	}

	return result.String(), nil
}

// Format renders t with a readable layout or preset name.
func Format(t time.Time, layout string) (string, error) {
	if preset, ok := Presets[strings.ToLower(layout)]; ok {
		layout = preset
	}
	goFmt, err := ParseLayout(layout)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}

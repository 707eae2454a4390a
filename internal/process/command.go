// Package process starts child processes without a console window and maps
// script files to the command line that runs them.
package process

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for command building.
var (
	ErrEmptyScript   = errors.New("script path cannot be empty")
	ErrNoInterpreter = errors.New("no interpreter configured for extension")
)

// InterpreterLookup returns the command prefix for a script extension
// (including the dot), or false when none is configured.
type InterpreterLookup func(ext string) ([]string, bool)

// Command builds the program and arguments that run script with target as
// its only argument.
//
//   - .exe and .com run directly
//   - .bat and .cmd run through "cmd /c"
//   - anything else uses the configured interpreter, e.g. ".py" -> "uv run"
func Command(script, target string, lookup InterpreterLookup) (string, []string, error) {
	if script == "" {
		return "", nil, ErrEmptyScript
	}

	ext := strings.ToLower(filepath.Ext(script))
	switch ext {
	case ".exe", ".com":
		return script, []string{target}, nil
	case ".bat", ".cmd":
		return "cmd", []string{"/c", script, target}, nil
	}

	if lookup != nil {
		if prefix, ok := lookup(ext); ok && len(prefix) > 0 {
			args := make([]string, 0, len(prefix)+1)
			args = append(args, prefix[1:]...)
			args = append(args, script, target)
			return prefix[0], args, nil
		}
	}

	return "", nil, fmt.Errorf("%w: %q (%s)", ErrNoInterpreter, ext, filepath.Base(script))
}

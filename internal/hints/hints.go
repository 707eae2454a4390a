// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-shellmenu/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to a Chrome or Edge executable")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the render timeout.
func ForTimeout() string {
	return format("raise tools.markdown.timeout in the config for large documents")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config path when one was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), "go-shellmenu/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForLauncherNotFound returns hints when the dispatcher executable is missing.
func ForLauncherNotFound() string {
	return format("build cmd/run_silent and pass its path with --launcher or generator.launcher")
}

// ForScriptsDir returns hints when the scripts directory is missing.
func ForScriptsDir() string {
	return format("pass --scripts-dir or set generator.scriptsDir (relative paths use baseDir)")
}

// ForDuplicateIdentifier returns hints for identifier collisions.
func ForDuplicateIdentifier() string {
	return format("rename one of the files or narrow --pattern; registry keys ignore case")
}

// ForRegistryWrite returns hints for output write failures.
func ForRegistryWrite() string {
	return format("check the output folder exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForHighlightStyle lists the chroma styles accepted by markdown.highlightStyle.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("highlightStyle must be one of: " + strings.Join(available, ", "))
}

// ForBackgroundRemover returns hints when the removal command cannot start.
func ForBackgroundRemover(command string) string {
	if command == "rembg" {
		return format(`install it with "uv tool install rembg[cli]" or set tools.background.command`)
	}
	return format("check that " + command + " is on PATH or fix tools.background.command")
}

// slashed normalizes separators so Windows paths match the same needle.
func slashed(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

// Package fileutil provides path naming and existence helpers shared by the
// tools.
package fileutil

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrSuffixPathTraversal    = errors.New("suffix contains path separator or null byte")
)

// Stem returns the file name of path without its final extension.
// "report.final.md" -> "report.final".
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Sibling returns the path next to input named stem+suffix, e.g.
// Sibling(`C:\a\photo.heic`, ".jpg") -> `C:\a\photo.jpg`.
// For directories the whole name is kept: the stem of "photos.2024" is
// "photos.2024" when isDir is true.
func Sibling(input, suffix string, isDir bool) (string, error) {
	if strings.ContainsAny(suffix, "/\\\x00") {
		return "", fmt.Errorf("%w: %q", ErrSuffixPathTraversal, suffix)
	}
	clean := filepath.Clean(input)
	name := Stem(clean)
	if isDir {
		name = filepath.Base(clean)
	}
	return filepath.Join(filepath.Dir(clean), name+suffix), nil
}

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content []byte, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "shellmenu-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.Write(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "C:\styles\print.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// HasExt reports whether path ends with one of exts, ignoring case.
// Each ext includes the leading dot.
func HasExt(path string, exts ...string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// FileURL converts an absolute path to a file:// URL. Windows drive paths
// get the extra slash browsers expect: C:\a\b.jpg -> file:///C:/a/b.jpg.
func FileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

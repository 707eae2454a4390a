package assets

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-shellmenu/internal/fileutil"
)

// Resolver combines custom and embedded loaders. Custom assets win; missing
// ones fall back to the embedded copy.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver. An empty customBasePath uses embedded
// assets only. A non-empty one must be a readable directory.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadStyle loads a CSS style, trying the custom loader first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return r.loadWithFallback(func(l Loader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate loads an HTML template, trying the custom loader first.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	return r.loadWithFallback(func(l Loader) (string, error) { return l.LoadTemplate(name) })
}

// Style loads a style by name, or reads it directly when nameOrPath looks
// like a file path ("print.css", `C:\styles\print.css`).
func (r *Resolver) Style(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		return "", nil
	}
	if fileutil.IsFilePath(nameOrPath) || fileutil.HasExt(nameOrPath, ".css") {
		data, err := os.ReadFile(nameOrPath) // #nosec G304 -- style path is user-provided
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrStyleNotFound, nameOrPath)
			}
			return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		return string(data), nil
	}
	return r.LoadStyle(nameOrPath)
}

func (r *Resolver) loadWithFallback(loadFn func(Loader) (string, error)) (string, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	content, err := loadFn(r.custom)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors.
	if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}
	return loadFn(r.embedded)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)

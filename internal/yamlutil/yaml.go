// Package yamlutil keeps the YAML library behind three calls so the config
// layer never imports it directly.
package yamlutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize caps config documents. Real files are a few hundred bytes.
var MaxDocumentSize int64 = 256 << 10

var (
	ErrEmptyDocument    = errors.New("yamlutil: empty document")
	ErrNilTarget        = errors.New("yamlutil: nil decode target")
	ErrDocumentTooLarge = errors.New("yamlutil: document too large")
)

// Decode parses data into v, rejecting keys v does not declare. Fields
// already set on v are kept when the document omits them.
func Decode(data []byte, v any) error {
	if v == nil {
		return ErrNilTarget
	}
	if len(data) == 0 {
		return ErrEmptyDocument
	}
	if int64(len(data)) > MaxDocumentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// DecodeFile reads path and decodes it with Decode. The size is checked
// before reading. OS errors are wrapped so fs.ErrNotExist stays matchable.
func DecodeFile(path string, v any) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	if info.Size() > MaxDocumentSize {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrDocumentTooLarge, path, info.Size(), MaxDocumentSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return Decode(data, v)
}

// Encode renders v as YAML with two-space indentation and indented lists.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

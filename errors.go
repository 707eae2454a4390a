package shellmenu

import "errors"

// Sentinel errors for registry generation.
var (
	ErrDirectoryNotFound   = errors.New("scripts directory not found")
	ErrLauncherNotFound    = errors.New("launcher executable not found")
	ErrDuplicateIdentifier = errors.New("duplicate script identifier")
	ErrWriteRegistry       = errors.New("failed to write registry file")

	// Options validation errors.
	ErrEmptyScriptsDir   = errors.New("scripts directory cannot be empty")
	ErrEmptyLauncher     = errors.New("launcher path cannot be empty")
	ErrEmptyOutputPath   = errors.New("output path cannot be empty")
	ErrInvalidPattern    = errors.New("invalid script pattern")
	ErrInvalidMenuKey    = errors.New("invalid menu key")
	ErrInvalidTarget     = errors.New("invalid menu target")
	ErrInvalidEncoding   = errors.New("invalid output encoding")
	ErrInvalidLineEnding = errors.New("invalid line ending")
	ErrInvalidIdentifier = errors.New("invalid script identifier")
)

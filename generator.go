package shellmenu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover lists the scripts in opts.ScriptsDir that match any of
// opts.Patterns, sorted by file name. Subdirectories, non-matching files and
// the launcher itself are skipped. Identifiers that collide case-insensitively
// fail with ErrDuplicateIdentifier.
func Discover(opts Options) ([]ScriptEntry, error) {
	opts, launcher, err := prepare(opts)
	if err != nil {
		return nil, err
	}
	return discover(opts, launcher)
}

// Build validates opts and assembles the registry document without writing it.
func Build(opts Options) (*RegistryDocument, error) {
	opts, launcher, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	entries, err := discover(opts, launcher)
	if err != nil {
		return nil, err
	}

	return &RegistryDocument{Menu: opts.Menu, Entries: entries}, nil
}

// Generate builds the registry document and writes it to opts.OutputPath in
// a single write, replacing any previous file. Nothing is written when
// discovery or validation fails.
func Generate(opts Options) (*RegistryDocument, error) {
	opts = opts.withDefaults()
	if opts.OutputPath == "" {
		return nil, ErrEmptyOutputPath
	}

	doc, err := Build(opts)
	if err != nil {
		return nil, err
	}

	data, err := doc.Encode(opts.Encoding, opts.LineEnding)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(opts.OutputPath, data, 0o644); err != nil { // #nosec G306 -- .reg files are meant to be read by regedit
		return nil, fmt.Errorf("%w: %w", ErrWriteRegistry, err)
	}

	return doc, nil
}

// launcher is the resolved dispatcher executable.
type launcher struct {
	path string
	info fs.FileInfo
}

// prepare applies defaults, validates opts and resolves the launcher.
func prepare(opts Options) (Options, launcher, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return opts, launcher{}, err
	}
	l, err := resolveLauncher(opts.LauncherPath)
	return opts, l, err
}

// resolveLauncher makes the launcher path absolute and checks it is a regular file.
func resolveLauncher(path string) (launcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return launcher{}, fmt.Errorf("%w: %s: %v", ErrLauncherNotFound, path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return launcher{}, fmt.Errorf("%w: %s", ErrLauncherNotFound, abs)
	}
	if info.IsDir() {
		return launcher{}, fmt.Errorf("%w: %s is a directory", ErrLauncherNotFound, abs)
	}

	return launcher{path: abs, info: info}, nil
}

// discover scans the scripts directory. opts must already be validated.
func discover(opts Options, l launcher) ([]ScriptEntry, error) {
	info, err := os.Stat(opts.ScriptsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, opts.ScriptsDir)
		}
		return nil, fmt.Errorf("reading scripts directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, opts.ScriptsDir)
	}

	dirEntries, err := os.ReadDir(opts.ScriptsDir)
	if err != nil {
		return nil, fmt.Errorf("reading scripts directory: %w", err)
	}

	var entries []ScriptEntry
	seen := make(map[string]string, len(dirEntries))

	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") || !matchesAny(opts.Patterns, name) {
			continue
		}

		// Stat follows symlinks, so linked scripts are included.
		info, err := os.Stat(filepath.Join(opts.ScriptsDir, name))
		if err != nil || info.IsDir() {
			continue
		}
		if os.SameFile(info, l.info) {
			continue
		}

		entry, err := newScriptEntry(opts.ScriptsDir, name, l.path)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", name, err)
		}
		if err := validateIdentifier(entry.Identifier); err != nil {
			return nil, fmt.Errorf("%w: from %q", err, name)
		}

		key := normalizeIdentifier(entry.Identifier)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to %q", ErrDuplicateIdentifier, prev, name, entry.Identifier)
		}
		seen[key] = name

		entries = append(entries, entry)
	}

	// os.ReadDir already sorts by name; sorting again keeps the order
	// explicit and independent of that implementation detail.
	slices.SortFunc(entries, func(a, b ScriptEntry) int {
		return strings.Compare(a.FileName, b.FileName)
	})

	return entries, nil
}

// matchesAny reports whether name matches one of the glob patterns, ignoring
// case as Windows file names do. Patterns are validated beforehand, so match
// errors cannot occur.
func matchesAny(patterns []string, name string) bool {
	name = strings.ToLower(name)
	for _, p := range patterns {
		if ok, _ := filepath.Match(strings.ToLower(p), name); ok {
			return true
		}
	}
	return false
}

// validateIdentifier rejects identifiers that cannot be used as a key segment.
func validateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}
	if strings.ContainsAny(id, `\[]`) || hasControl(id) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return nil
}

// WriteUninstall writes a .reg file to path that removes the menu described
// by opts from every target. Only the menu and output format fields of opts
// are used.
func WriteUninstall(opts Options, path string) error {
	opts = opts.withDefaults()
	if path == "" {
		return ErrEmptyOutputPath
	}
	if err := opts.Menu.Validate(); err != nil {
		return err
	}

	data, err := encodeText(RenderUninstall(opts.Menu), opts.Encoding, opts.LineEnding)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- .reg files are meant to be read by regedit
		return fmt.Errorf("%w: %w", ErrWriteRegistry, err)
	}
	return nil
}

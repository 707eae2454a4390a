package assets

import "fmt"

// maxNameLen bounds style and template names.
const maxNameLen = 64

// checkName accepts names made of ASCII letters, digits, '-' and '_'.
// Anything else could select a file outside the asset directories.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxNameLen)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}

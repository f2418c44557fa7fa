package assets

import (
	"fmt"
	"strings"
)

// forbiddenNameChars would let a name select a different directory, drive or
// extension than the loader intends.
const forbiddenNameChars = "/\\.:\x00"

// ValidateAssetName checks that name is usable as a bare file stem.
// Returns ErrInvalidAssetName if the name is empty, longer than
// maxAssetNameLength, or contains a separator, dot, colon or NUL.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: name longer than %d bytes", ErrInvalidAssetName, maxAssetNameLength)
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

const maxAssetNameLength = 128

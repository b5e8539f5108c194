package assets

import (
	"fmt"
	"io/fs"
	"strings"
)

// ValidateAssetName checks that a template name can be used as a path below
// the templates directory. Returns ErrInvalidAssetName if the name is empty,
// contains a backslash, or is not a valid io/fs path once prefixed.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.Contains(name, "\\") || !fs.ValidPath(templatePath(name)) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

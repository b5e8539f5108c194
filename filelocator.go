package resumaker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-resumaker/internal/fileutil"
)

// FileLocator resolves user-supplied paths to absolute paths.
type FileLocator interface {
	// Find resolves path against the locator root. When ensureParentDir is
	// true, the parent directory is created. A missing target is not an
	// error; an existing directory is.
	Find(path string, ensureParentDir bool) (string, error)
}

// FSLocator resolves paths on the local filesystem relative to a root.
type FSLocator struct {
	root string
}

// NewFSLocator creates a locator rooted at root. An empty root means the
// process working directory at construction time.
func NewFSLocator(root string) (*FSLocator, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFileLocator, err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileLocator, err)
	}
	return &FSLocator{root: abs}, nil
}

// Root returns the absolute directory relative paths are resolved against.
func (l *FSLocator) Root() string {
	return l.root
}

// Find implements FileLocator.
func (l *FSLocator) Find(path string, ensureParentDir bool) (string, error) {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(l.root, resolved)
	}
	resolved = filepath.Clean(resolved)

	if fileutil.IsDir(resolved) {
		return "", fmt.Errorf("%w: %w: %s", ErrFileLocator, ErrPathIsDirectory, resolved)
	}

	if ensureParentDir {
		parent := filepath.Dir(resolved)
		if err := os.MkdirAll(parent, 0o750); err != nil {
			return "", fmt.Errorf("%w: %w: %s: %v", ErrFileLocator, ErrCreateParentDir, parent, err)
		}
	}

	return resolved, nil
}

// Compile-time interface check.
var _ FileLocator = (*FSLocator)(nil)

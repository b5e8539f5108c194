// Package fileutil provides file and path helpers shared by the locator,
// the PDF converter and the config loader.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNilWriteFunc           = errors.New("write function cannot be nil")
)

// tempPattern prefixes every scratch file the tool creates.
const tempPattern = "resumaker-*."

// WriteTempFile creates a temporary file with the given extension and fills it
// through write. Returns the file path and a cleanup function removing it.
// The file is removed before returning if write fails.
func WriteTempFile(write func(w io.Writer) error, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}
	if write == nil {
		return "", nil, ErrNilWriteFunc
	}

	tmpFile, err := os.CreateTemp("", tempPattern+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if writeErr := write(tmpFile); writeErr != nil {
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

// IsDir returns true if the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
// Examples:
//   - "work" -> false (name)
//   - "./work.yaml" -> true
//   - "/etc/resumaker/work.yaml" -> true
//   - "C:\cfg\work.yaml" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

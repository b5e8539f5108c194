package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed templates/*.html schema/*.json
var bundled embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a built-in template by file name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := bundled.ReadFile(templatePath(name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadSchema loads the bundled résumé schema.
func (e *EmbeddedLoader) LoadSchema() (string, error) {
	content, err := bundled.ReadFile(schemaPath())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSchemaNotFound, err)
	}
	return string(content), nil
}

// Names returns the sorted file names of the built-in templates.
func Names() []string {
	entries, err := fs.ReadDir(bundled, TemplatesDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)

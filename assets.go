package resumaker

import (
	"errors"

	"github.com/alnah/go-resumaker/internal/assets"
)

// AssetLoader defines the contract for loading built-in résumé templates and
// the résumé JSON schema. Implementations may load from embedded assets, a
// directory, or anything else.
type AssetLoader interface {
	// LoadTemplate loads a template by file name (e.g. "default.html").
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadSchema loads the JSON schema of a résumé file.
	LoadSchema() (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, only the embedded assets are used.
// If basePath is set, {basePath}/templates/*.html and
// {basePath}/schema/resume.schema.json take precedence over the embedded ones.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// defaultAssetLoader returns a loader over the embedded assets only.
func defaultAssetLoader() AssetLoader {
	resolver, _ := assets.NewAssetResolver("") // no base path, cannot fail
	return &assetLoaderAdapter{resolver: resolver}
}

// BuiltinTemplates lists the names of the embedded templates.
func BuiltinTemplates() []string {
	return assets.Names()
}

// assetLoaderAdapter wraps the internal resolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadSchema() (string, error) {
	content, err := a.resolver.LoadSchema()
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrTemplateNotFound),
		errors.Is(err, assets.ErrInvalidAssetName):
		// An unusable name cannot match any template.
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrSchemaNotFound):
		return wrapError(ErrResumeSchema, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError returns an error with the original message that matches the
// public sentinel under errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap exposes only the public sentinel; internal errors stay internal.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}

// Compile-time interface check.
var _ AssetLoader = (*assetLoaderAdapter)(nil)

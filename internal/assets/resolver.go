package assets

import "errors"

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it is tried first and the embedded
// loader serves whatever the custom directory does not provide.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns an error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a template, trying the custom loader first.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.loadWithFallback(func(loader AssetLoader) (string, error) {
		return loader.LoadTemplate(name)
	})
}

// LoadSchema loads the schema, trying the custom loader first.
func (r *AssetResolver) LoadSchema() (string, error) {
	return r.loadWithFallback(func(loader AssetLoader) (string, error) {
		return loader.LoadSchema()
	})
}

func (r *AssetResolver) loadWithFallback(loadFn func(AssetLoader) (string, error)) (string, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	content, err := loadFn(r.custom)
	if err == nil {
		return content, nil
	}

	// Validation and I/O errors do not fall back.
	if !isNotFoundError(err) {
		return "", err
	}

	return loadFn(r.embedded)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) || errors.Is(err, ErrSchemaNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)

package resumaker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// maxSchemaErrors caps how many schema violations are reported.
const maxSchemaErrors = 10

// ResumeLocator loads the collection of language variants from a file.
type ResumeLocator interface {
	GetResume(path string) ([]Resume, error)
}

// JSONResumeLocator reads a JSON array of résumés, validates it against the
// résumé schema and decodes it. Unknown fields are ignored.
type JSONResumeLocator struct {
	files            FileLocator
	assets           AssetLoader
	schemaValidation bool

	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
}

// NewJSONResumeLocator creates a locator reading through files.
// Relevant options: WithAssetLoader, WithSchemaValidation.
func NewJSONResumeLocator(files FileLocator, opts ...Option) *JSONResumeLocator {
	o := newOptions(opts)
	if o.assets == nil {
		o.assets = defaultAssetLoader()
	}
	return &JSONResumeLocator{
		files:            files,
		assets:           o.assets,
		schemaValidation: o.schemaValidation,
	}
}

// GetResume implements ResumeLocator.
func (l *JSONResumeLocator) GetResume(path string) ([]Resume, error) {
	abs, err := l.files.Find(path, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResume, err)
	}

	data, err := os.ReadFile(abs) // #nosec G304 -- user-provided résumé path
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrResume, ErrResumeRead, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w: %s: %v", ErrResume, ErrResumeDecode, abs, err)
	}

	if l.schemaValidation {
		if err := l.validate(raw); err != nil {
			return nil, fmt.Errorf("%w: %w: %s: %v", ErrResume, ErrResumeSchema, abs, err)
		}
	}

	var resumes []Resume
	if err := json.Unmarshal(data, &resumes); err != nil {
		return nil, fmt.Errorf("%w: %w: %s: %v", ErrResume, ErrResumeDecode, abs, err)
	}
	return resumes, nil
}

// validate checks a decoded document against the résumé schema.
func (l *JSONResumeLocator) validate(doc any) error {
	schema, err := l.loadSchema()
	if err != nil {
		return err
	}

	res, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	errs := res.Errors()
	msgs := make([]string, 0, min(len(errs), maxSchemaErrors))
	for i, e := range errs {
		if i == maxSchemaErrors {
			msgs = append(msgs, fmt.Sprintf("and %d more", len(errs)-maxSchemaErrors))
			break
		}
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}

// loadSchema compiles the schema once per locator.
func (l *JSONResumeLocator) loadSchema() (*gojsonschema.Schema, error) {
	l.schemaOnce.Do(func() {
		source, err := l.assets.LoadSchema()
		if err != nil {
			l.schemaErr = err
			return
		}
		l.schema, l.schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	})
	return l.schema, l.schemaErr
}

// Compile-time interface check.
var _ ResumeLocator = (*JSONResumeLocator)(nil)

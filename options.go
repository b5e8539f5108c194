package resumaker

import (
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-resumaker/internal/logging"
)

// PDF layout engines.
const (
	EngineRod      = "rod"
	EngineChromedp = "chromedp"
)

// defaultTimeout bounds a single page layout.
const defaultTimeout = 30 * time.Second

// Option configures a component. Components ignore options that do not
// concern them, so one option list can be shared across constructors.
type Option func(*options)

type options struct {
	logger           *zap.Logger
	assets           AssetLoader
	strict           bool
	engine           string
	timeout          time.Duration
	page             *PageSettings
	schemaValidation bool
	renderer         pdfRenderer // injected by tests
}

func newOptions(opts []Option) options {
	o := options{
		logger:           logging.Nop(),
		engine:           EngineRod,
		timeout:          defaultTimeout,
		schemaValidation: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAssetLoader sets where built-in templates and the résumé schema are
// loaded from. Defaults to the embedded assets.
func WithAssetLoader(a AssetLoader) Option {
	return func(o *options) {
		o.assets = a
	}
}

// WithStrict makes templates fail on missing map keys instead of printing
// "<no value>".
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithEngine selects the PDF layout engine (EngineRod or EngineChromedp).
// Unknown names are rejected by NewDocumentPDFConverter.
func WithEngine(engine string) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithTimeout sets the page layout timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resumaker: WithTimeout duration must be positive")
	}
	return func(o *options) {
		o.timeout = d
	}
}

// WithPageSettings sets the PDF page size, orientation and margin.
func WithPageSettings(p *PageSettings) Option {
	return func(o *options) {
		o.page = p
	}
}

// WithSchemaValidation toggles JSON schema validation of résumé files.
// Enabled by default.
func WithSchemaValidation(enabled bool) Option {
	return func(o *options) {
		o.schemaValidation = enabled
	}
}

// withPDFRenderer replaces the browser-backed renderer.
func withPDFRenderer(r pdfRenderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-resumaker/internal/fileutil"
	"github.com/alnah/go-resumaker/internal/logging"
	"github.com/alnah/go-resumaker/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxTemplateLength    = 255
	MaxLanguageLength    = 35 // BCP 47 tags stay well below this
	MaxLanguages         = 100
	MaxPageSizeLength    = 10 // "letter", "a4", "legal"
	MaxOrientationLength = 10 // "portrait", "landscape"
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Accepted enumeration values.
var (
	Engines      = []string{"rod", "chromedp"}
	PageSizes    = []string{"letter", "a4", "legal"}
	Orientations = []string{"portrait", "landscape"}
)

// ConfigDirName is the directory searched under the user config directory.
const ConfigDirName = "resumaker"

// Config holds all configuration for résumé generation.
type Config struct {
	Output    OutputConfig   `yaml:"output"`
	Template  TemplateConfig `yaml:"template"`
	Languages []string       `yaml:"languages"`
	Resume    ResumeConfig   `yaml:"resume"`
	Log       LogConfig      `yaml:"log"`
	Assets    AssetsConfig   `yaml:"assets"`
	PDF       PDFConfig      `yaml:"pdf"`
	Page      PageConfig     `yaml:"page"`
}

// OutputConfig defines where PDFs are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = "./generated"
}

// TemplateConfig selects the HTML template.
type TemplateConfig struct {
	Name   string `yaml:"name"`   // built-in name or "./path.html"
	Strict bool   `yaml:"strict"` // fail on missing keys
}

// ResumeConfig controls how the résumé file is read.
type ResumeConfig struct {
	SkipSchema bool `yaml:"skipSchema"` // skip JSON schema validation
}

// LogConfig defines log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // "info", "debug", "trace"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// PDFConfig selects the layout engine.
type PDFConfig struct {
	Engine  string `yaml:"engine"`  // "rod" (default) or "chromedp"
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches, 0 = default

	NoBackground bool `yaml:"noBackground"` // omit CSS backgrounds from the PDF
}

// TimeoutDuration parses PDF.Timeout. An empty value returns zero.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.PDF.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: pdf.timeout %q: %v", ErrInvalidValue, c.PDF.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// Validate checks enumerations, ranges and field lengths.
// Called automatically by LoadConfig, but available for callers that build
// or merge a Config themselves.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.name", c.Template.Name, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if len(c.Languages) > MaxLanguages {
		return fmt.Errorf("%w: languages (%d entries, max %d)", ErrFieldTooLong, len(c.Languages), MaxLanguages)
	}
	for i, lang := range c.Languages {
		if err := validateFieldLength(fmt.Sprintf("languages[%d]", i), lang, MaxLanguageLength); err != nil {
			return err
		}
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("%w: languages[%d] is empty", ErrInvalidValue, i)
		}
	}

	if c.Log.Level != "" {
		if _, err := logging.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
		}
	}

	if err := validateEnum("pdf.engine", c.PDF.Engine, Engines); err != nil {
		return err
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if err := validateEnum("page.size", c.Page.Size, PageSizes); err != nil {
		return err
	}
	if err := validateEnum("page.orientation", c.Page.Orientation, Orientations); err != nil {
		return err
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin must be between %.2f and %.1f inches, got %.2f",
			ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, case-insensitively.
func validateEnum(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns a configuration with every field unset, so that the
// library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as name.yaml / name.yml in the current directory,
// then in the user config directory under "resumaker".
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, ConfigDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

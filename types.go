package resumaker

import (
	"fmt"
	"strings"
)

// Resume is one language variant of a résumé. A résumé file holds a JSON
// array of these, one per language.
type Resume struct {
	Language    Language  `json:"language"`
	Profile     Profile   `json:"profile"`
	Skills      []Skill   `json:"skills"`
	Jobs        []Job     `json:"jobs"`
	Projects    []Project `json:"projects"`
	DevLinks    []Link    `json:"devLinks"`
	SocialMedia []Link    `json:"socialMedia"`
}

// Language identifies a variant. Name is the selection key and the output
// file stem; Keywords are localized labels for template headings.
type Language struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Profile holds the candidate's identity. Pitch may contain Markdown.
type Profile struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Pitch    string `json:"pitch"`
	Email    string `json:"email"`
}

// Skill is a named skill with a free-form experience label.
type Skill struct {
	Name       string `json:"name"`
	Experience string `json:"experience"`
}

// Job is a position held. Dates are free-form strings, nil when absent.
type Job struct {
	Employer    string  `json:"employer"`
	Position    string  `json:"position"`
	Description string  `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// Project is a personal or professional project.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stack       string `json:"stack"`
	URL         string `json:"url"`
}

// Link is a named URL (developer profile, social network).
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GenerateParams controls one generation run.
type GenerateParams struct {
	OutDir    string   // directory receiving <language>.pdf files
	Template  string   // built-in name or "./custom.html"
	Languages []string // empty = every language in the file
}

// Defaults for GenerateParams.
const (
	DefaultOutDir   = "./generated"
	DefaultTemplate = "default.html"
)

// DefaultGenerateParams returns the parameters used when nothing is set.
func DefaultGenerateParams() GenerateParams {
	return GenerateParams{
		OutDir:   DefaultOutDir,
		Template: DefaultTemplate,
	}
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides

	// NoBackground drops CSS background colors and images from the PDF.
	// Backgrounds are printed by default.
	NoBackground bool
}

// DefaultPageSettings returns US letter, portrait, half-inch margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := pageDimensions[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// pageDimensions holds portrait width and height in inches.
var pageDimensions = map[string]struct{ width, height float64 }{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// resolvePageDimensions returns paper width, height and margin in inches.
// Unknown or empty values fall back to the defaults.
func resolvePageDimensions(p *PageSettings) (width, height, margin float64) {
	if p == nil {
		p = DefaultPageSettings()
	}

	dims, ok := pageDimensions[strings.ToLower(p.Size)]
	if !ok {
		dims = pageDimensions[PageSizeLetter]
	}
	width, height = dims.width, dims.height
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		width, height = height, width
	}

	margin = p.Margin
	if margin <= 0 {
		margin = DefaultMargin
	}
	return width, height, margin
}

// printBackground reports whether CSS backgrounds go into the PDF.
func printBackground(p *PageSettings) bool {
	return p == nil || !p.NoBackground
}

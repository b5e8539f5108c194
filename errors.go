package resumaker

import "errors"

// Stage errors. Every error returned by a component wraps exactly one of
// these, plus a finer cause where one applies.
var (
	ErrFileLocator       = errors.New("file locator error")
	ErrResume            = errors.New("resume error")
	ErrTemplateRendering = errors.New("template rendering failed")
	ErrPDFConvert        = errors.New("PDF conversion failed")
)

// File locator causes.
var (
	ErrPathIsDirectory = errors.New("path is a directory")
	ErrCreateParentDir = errors.New("failed to create parent directory")
)

// Résumé loading causes.
var (
	ErrResumeRead   = errors.New("failed to read resume file")
	ErrResumeDecode = errors.New("failed to decode resume JSON")
	ErrResumeSchema = errors.New("resume does not match schema")
)

// Template causes.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateParse    = errors.New("template parse failed")
	ErrTemplateEval     = errors.New("template evaluation failed")
)

// PDF causes.
var (
	ErrDocumentParse  = errors.New("document parse failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFWrite       = errors.New("failed to write PDF file")
)

// Configuration errors.
var (
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
	ErrInvalidEngine      = errors.New("invalid PDF engine")
	ErrInvalidAssetPath   = errors.New("invalid asset path")
)

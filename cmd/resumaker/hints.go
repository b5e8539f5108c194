package main

import (
	"context"
	"errors"
	"fmt"

	resumaker "github.com/alnah/go-resumaker"
	"github.com/alnah/go-resumaker/internal/hints"
)

// withHint appends hint to err while keeping it matchable with errors.Is.
func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// hintedResumeLocator adds hints to load failures and remembers the last
// loaded résumés for the end-of-run summary.
type hintedResumeLocator struct {
	next    resumaker.ResumeLocator
	workDir string
	loaded  []resumaker.Resume
}

func (l *hintedResumeLocator) GetResume(path string) ([]resumaker.Resume, error) {
	resumes, err := l.next.GetResume(path)
	if err != nil {
		switch {
		case errors.Is(err, resumaker.ErrPathIsDirectory):
			err = withHint(err, hints.ForResumeIsDirectory())
		case errors.Is(err, resumaker.ErrResumeRead):
			err = withHint(err, hints.ForResumeNotFound(l.workDir))
		}
		return nil, err
	}
	l.loaded = resumes
	return resumes, nil
}

// hintedRenderer lists the built-in templates when a template is missing.
type hintedRenderer struct {
	next resumaker.TemplateRenderer
}

func (r *hintedRenderer) Render(ctx context.Context, templateNameOrPath string, resume resumaker.Resume) (string, error) {
	out, err := r.next.Render(ctx, templateNameOrPath, resume)
	if errors.Is(err, resumaker.ErrTemplateNotFound) {
		err = withHint(err, hints.ForTemplateNotFound(resumaker.BuiltinTemplates()))
	}
	return out, err
}

// hintedConverter adds browser, timeout and output directory hints.
type hintedConverter struct {
	next   resumaker.PDFConverter
	engine string
}

func (c *hintedConverter) Convert(ctx context.Context, htmlContent, outPath string) (string, error) {
	path, err := c.next.Convert(ctx, htmlContent, outPath)
	if err == nil {
		return path, nil
	}

	switch {
	case errors.Is(err, resumaker.ErrBrowserConnect):
		err = withHint(err, hints.ForBrowserConnect(c.engine))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, resumaker.ErrPageLoad):
		err = withHint(err, hints.ForTimeout())
	case errors.Is(err, resumaker.ErrCreateParentDir):
		err = withHint(err, hints.ForOutputDirectory())
	}
	return "", err
}

// Compile-time interface checks.
var (
	_ resumaker.ResumeLocator    = (*hintedResumeLocator)(nil)
	_ resumaker.TemplateRenderer = (*hintedRenderer)(nil)
	_ resumaker.PDFConverter     = (*hintedConverter)(nil)
)

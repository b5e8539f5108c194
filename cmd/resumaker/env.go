package main

import (
	"io"
	"os"
	"time"

	resumaker "github.com/alnah/go-resumaker"
)

// pdfConverter is a PDFConverter holding a browser that must be released.
type pdfConverter interface {
	resumaker.PDFConverter
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Environ      func() []string
	NewConverter func(files resumaker.FileLocator, opts ...resumaker.Option) (pdfConverter, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ,
		NewConverter: func(files resumaker.FileLocator, opts ...resumaker.Option) (pdfConverter, error) {
			return resumaker.NewDocumentPDFConverter(files, opts...)
		},
	}
}

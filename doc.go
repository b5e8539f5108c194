// Package resumaker turns a JSON file holding one résumé per language into
// one PDF per language, through an HTML template and headless Chrome.
//
// # Quick Start
//
//	files, err := resumaker.NewFSLocator("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv, err := resumaker.NewDocumentPDFConverter(files)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	gen := resumaker.NewGenerator(
//	    resumaker.NewJSONResumeLocator(files),
//	    resumaker.NewHTMLTemplateRenderer(files),
//	    conv,
//	)
//	paths := gen.Generate(ctx, "resume.json", resumaker.DefaultGenerateParams())
//
// # Pipeline
//
// Each run goes through four stages, strictly in sequence:
//
//  1. Locate: JSONResumeLocator reads and validates the résumé file
//  2. Filter: keep the requested languages, in file order
//  3. Render: HTMLTemplateRenderer executes the template for one variant
//  4. Convert: DocumentPDFConverter parses the HTML and prints it to
//     <outDir>/<language>.pdf
//
// Every stage returns errors wrapping one of ErrFileLocator, ErrResume,
// ErrTemplateRendering or ErrPDFConvert. Generator never fails: it logs the
// error and moves on to the next language.
//
// # Templates
//
// A template reference starting with "." and ending with ".html" is a file
// on disk, resolved against the locator root. Anything else names a
// built-in template (see BuiltinTemplates), optionally overridden from a
// directory with WithAssetLoader(NewAssetLoader(dir)).
//
// Templates receive the résumé keyed by JSON field names:
//
//	<h1>{{.profile.name}} {{.profile.lastName}}</h1>
//	{{range .jobs}}<p>{{.position}}, {{date .startDate "short"}}</p>{{end}}
//
// Functions: markdown (render a Markdown field), date (format an ISO-like
// date), join, lower, upper, and keyword (pick a localized label from
// language.keywords with a fallback).
//
// # PDF Engines
//
// The default engine drives Chrome through go-rod, which downloads a browser
// on first use unless ROD_BROWSER_BIN is set. WithEngine(EngineChromedp)
// uses chromedp with the Chrome found on PATH or in CHROME_PATH.
package resumaker

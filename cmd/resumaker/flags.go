package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-resumaker/internal/logging"
)

// ErrUsage marks invalid command-line flags.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags that do not feed the generation itself.
type commonFlags struct {
	config      string
	logLevel    string
	version     bool
	printConfig bool
}

// outputFlags selects what is generated and where.
type outputFlags struct {
	outDir    string
	template  string
	languages []string
	strict    bool
}

// pdfFlags holds layout engine flags.
type pdfFlags struct {
	engine   string
	timeout  string
	noSchema bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
	noBG        bool
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	assetPath string
}

// cliFlags holds every resumaker flag.
type cliFlags struct {
	common commonFlags
	output outputFlags
	pdf    pdfFlags
	page   pageFlags
	assets assetFlags

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: "+strings.Join(logging.LevelNames(), ", "))
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration as YAML and exit")
}

// addOutputFlags adds output selection flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.outDir, "outDir", "o", "", "output directory (default ./generated)")
	fs.StringVarP(&f.template, "template", "t", "", "built-in template name or ./path.html (default default.html)")
	fs.StringSliceVarP(&f.languages, "language", "l", nil, "language to generate, repeatable or comma separated (default all)")
	fs.BoolVar(&f.strict, "strict", false, "fail templates on missing fields")
}

// addPDFFlags adds layout engine flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.StringVar(&f.engine, "engine", "", "PDF engine: rod, chromedp")
	fs.StringVar(&f.timeout, "timeout", "", "page layout timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.noSchema, "no-schema", false, "skip JSON schema validation of the résumé file")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.BoolVar(&f.noBG, "no-background", false, "omit CSS backgrounds from the PDF")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding built-in templates and schema")
}

// parseFlags parses args (without the program name) and returns the
// positional arguments. Help requests return flag.ErrHelp.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("resumaker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{changed: fs.Changed}
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addPDFFlags(fs, &f.pdf)
	addPageFlags(fs, &f.page)
	addAssetFlags(fs, &f.assets)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

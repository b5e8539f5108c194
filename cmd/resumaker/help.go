package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumaker [flags] <resume.json>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one PDF per language from a JSON résumé file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --outDir <dir>        Output directory (default ./generated)")
	fmt.Fprintln(w, "  -t, --template <s>        Built-in template name or ./path.html (default default.html)")
	fmt.Fprintln(w, "  -l, --language <s>        Language to generate, repeatable or comma separated")
	fmt.Fprintln(w, "      --strict              Fail templates on missing fields")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --engine <s>          Layout engine: rod, chromedp (default rod)")
	fmt.Fprintln(w, "      --timeout <d>         Page layout timeout (default 30s)")
	fmt.Fprintln(w, "      --no-schema           Skip JSON schema validation")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "      --no-background       Omit CSS backgrounds from the PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/ and schema/ overrides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --log-level <s>       Log level: info, debug, trace (default info)")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RESUMAKER_CONFIG, RESUMAKER_OUT_DIR, RESUMAKER_TEMPLATE, RESUMAKER_LANGUAGES,")
	fmt.Fprintln(w, "  RESUMAKER_LOG_LEVEL, RESUMAKER_ENGINE, RESUMAKER_TIMEOUT, RESUMAKER_ASSET_PATH")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN, ROD_NO_SANDBOX (rod), CHROME_PATH (chromedp)")
}

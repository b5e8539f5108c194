// Package hints provides actionable follow-ups for common failures.
// Every hint has the form "\n  hint: <text>" so it can be appended to a log
// message or error string as-is.
package hints

import (
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-resumaker/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// inCI reports whether a common CI marker is set.
func inCI() bool {
	for _, k := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(k) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect returns hints for browser launch errors of the given
// layout engine ("rod" or "chromedp").
func ForBrowserConnect(engine string) string {
	var hs []string

	if engine == "chromedp" {
		if os.Getenv("CHROME_PATH") == "" {
			hs = append(hs, "set CHROME_PATH to a Chrome/Chromium binary")
		}
		return formatAll(hs)
	}

	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hs = append(hs, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hs = append(hs, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	return formatAll(hs)
}

// ForTimeout returns a hint about raising the layout timeout.
func ForTimeout() string {
	return format("for long résumés, raise --timeout (e.g. --timeout 2m)")
}

// ForResumeNotFound returns a hint for a missing résumé source file.
func ForResumeNotFound(workDir string) string {
	return format("paths are resolved from " + workDir)
}

// ForResumeIsDirectory returns a hint for a résumé path naming a directory.
func ForResumeIsDirectory() string {
	return format("pass the résumé JSON file itself, e.g. ./resume.json")
}

// ForTemplateNotFound lists the built-in templates and the custom syntax.
func ForTemplateNotFound(available []string) string {
	hint := `custom templates must start with "." and end with ".html"`
	if len(available) > 0 {
		sorted := append([]string(nil), available...)
		sort.Strings(sorted)
		hint = "built-in: " + strings.Join(sorted, ", ") + "; " + hint
	}
	return format(hint)
}

// ForUnknownLanguages lists the languages the source file actually holds.
func ForUnknownLanguages(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available languages: " + strings.Join(available, ", "))
}

// ForConfigNotFound suggests --config and the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/resumaker") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatAll(hs []string) string {
	if len(hs) == 0 {
		return ""
	}
	return format(strings.Join(hs, "; "))
}

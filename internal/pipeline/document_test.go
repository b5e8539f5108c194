package pipeline

import (
	"strings"
	"testing"

	"golang.org/x/net/html/atom"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mustParse(t *testing.T, content string) string {
	t.Helper()

	doc, err := ParseDocument(content)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	var sb strings.Builder
	if err := RenderDocument(&sb, doc); err != nil {
		t.Fatalf("RenderDocument() error = %v", err)
	}
	return sb.String()
}

// ---------------------------------------------------------------------------
// ParseDocument / RenderDocument
// ---------------------------------------------------------------------------

func TestParseDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "full document preserved",
			input:        "<!DOCTYPE html><html><head><title>CV</title></head><body><p>x</p></body></html>",
			wantContains: []string{"<!DOCTYPE html>", "<title>CV</title>", "<p>x</p>"},
		},
		{
			name:         "fragment wrapped",
			input:        "<p>Hello</p>",
			wantContains: []string{"<html>", "<head>", "<body><p>Hello</p></body>"},
		},
		{
			name:         "unclosed tags repaired",
			input:        "<div><p>one<p>two</div>",
			wantContains: []string{"<p>one</p><p>two</p></div>"},
		},
		{
			name:         "empty input",
			input:        "",
			wantContains: []string{"<html><head></head><body></body></html>"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mustParse(t, tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("rendered = %q, want to contain %q", got, want)
				}
			}
		})
	}
}

func TestDocumentTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "with title", input: "<title>  Ada Lovelace </title>", want: "Ada Lovelace"},
		{name: "without title", input: "<p>x</p>", want: ""},
		{name: "entity decoded", input: "<title>R&eacute;sum&eacute;</title>", want: "Résumé"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument(tt.input)
			if err != nil {
				t.Fatalf("ParseDocument() error = %v", err)
			}
			if got := DocumentTitle(doc); got != tt.want {
				t.Errorf("DocumentTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindElement(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument("<ul><li>a</li><li>b</li></ul>")
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	li := FindElement(doc, atom.Li)
	if li == nil || li.FirstChild == nil || li.FirstChild.Data != "a" {
		t.Errorf("FindElement(li) did not return the first item")
	}
	if FindElement(doc, atom.Table) != nil {
		t.Error("FindElement(table) should be nil")
	}
}

// ---------------------------------------------------------------------------
// EnsureCharset
// ---------------------------------------------------------------------------

func TestEnsureCharset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantCount int
	}{
		{name: "missing charset added", input: "<p>x</p>", wantCount: 1},
		{name: "existing charset kept", input: `<head><meta charset="iso-8859-1"></head>`, wantCount: 0},
		{name: "http-equiv kept", input: `<head><meta http-equiv="Content-Type" content="text/html; charset=utf-8"></head>`, wantCount: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument(tt.input)
			if err != nil {
				t.Fatalf("ParseDocument() error = %v", err)
			}
			EnsureCharset(doc)

			var sb strings.Builder
			if err := RenderDocument(&sb, doc); err != nil {
				t.Fatalf("RenderDocument() error = %v", err)
			}
			if got := strings.Count(sb.String(), `<meta charset="utf-8"/>`); got != tt.wantCount {
				t.Errorf("utf-8 meta count = %d, want %d in %q", got, tt.wantCount, sb.String())
			}
		})
	}
}

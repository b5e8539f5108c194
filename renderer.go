package resumaker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/alnah/go-resumaker/internal/dateutil"
	"github.com/alnah/go-resumaker/internal/pipeline"
)

// TemplateRenderer produces the HTML of one résumé variant.
type TemplateRenderer interface {
	Render(ctx context.Context, templateNameOrPath string, r Resume) (string, error)
}

// IsCustomTemplate reports whether s refers to a template file on disk
// rather than a built-in template: it starts with "." and ends with ".html".
func IsCustomTemplate(s string) bool {
	return strings.HasPrefix(s, ".") && strings.HasSuffix(s, ".html")
}

// HTMLTemplateRenderer renders résumés with html/template. The résumé is
// exposed to the template as a map keyed by JSON field names, so templates
// write {{.profile.lastName}} and {{range .jobs}}.
//
// Available functions: markdown, date, join, lower, upper, keyword.
type HTMLTemplateRenderer struct {
	files    FileLocator
	assets   AssetLoader
	markdown pipeline.MarkdownConverter
	strict   bool
}

// NewHTMLTemplateRenderer creates a renderer resolving custom templates
// through files. Relevant options: WithAssetLoader, WithStrict.
func NewHTMLTemplateRenderer(files FileLocator, opts ...Option) *HTMLTemplateRenderer {
	o := newOptions(opts)
	if o.assets == nil {
		o.assets = defaultAssetLoader()
	}
	return &HTMLTemplateRenderer{
		files:    files,
		assets:   o.assets,
		markdown: pipeline.NewGoldmarkConverter(),
		strict:   o.strict,
	}
}

// Render implements TemplateRenderer.
func (r *HTMLTemplateRenderer) Render(ctx context.Context, templateNameOrPath string, resume Resume) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateRendering, err)
	}

	source, err := r.loadSource(templateNameOrPath)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrTemplateRendering, templateNameOrPath, err)
	}

	tmpl := template.New(templateNameOrPath).Funcs(r.funcs(ctx))
	if r.strict {
		tmpl = tmpl.Option("missingkey=error")
	}
	tmpl, err = tmpl.Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %v", ErrTemplateRendering, ErrTemplateParse, err)
	}

	payload, err := toPayload(resume)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %q: %v", ErrTemplateRendering, ErrTemplateEval, templateNameOrPath, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, payload); err != nil {
		return "", fmt.Errorf("%w: %w: %v", ErrTemplateRendering, ErrTemplateEval, err)
	}
	return sb.String(), nil
}

// loadSource reads a custom template from disk or a built-in one from the
// asset loader.
func (r *HTMLTemplateRenderer) loadSource(templateNameOrPath string) (string, error) {
	if !IsCustomTemplate(templateNameOrPath) {
		return r.assets.LoadTemplate(templateNameOrPath)
	}

	path, err := r.files.Find(templateNameOrPath, false)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided template path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", err
	}
	return string(content), nil
}

// funcs returns the template function map. markdown honors ctx.
func (r *HTMLTemplateRenderer) funcs(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"markdown": func(v any) (template.HTML, error) {
			out, err := r.markdown.ToHTML(ctx, toString(v))
			if err != nil {
				return "", err
			}
			return template.HTML(out), nil // #nosec G203 -- goldmark output without raw HTML
		},
		"date": func(v any, format string) (string, error) {
			s := toString(v)
			if s == "" {
				return "", nil
			}
			return dateutil.FormatDate(s, format)
		},
		"join": func(v any, sep string) string {
			return strings.Join(toStrings(v), sep)
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"keyword": func(v any, index int, fallback string) string {
			words := toStrings(v)
			if index < 0 || index >= len(words) || words[index] == "" {
				return fallback
			}
			return words[index]
		},
	}
}

// toPayload converts a résumé to the map seen by templates.
func toPayload(resume Resume) (map[string]any, error) {
	data, err := json.Marshal(resume)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	default:
		return fmt.Sprint(v)
	}
}

func toStrings(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = toString(item)
		}
		return out
	default:
		return nil
	}
}

// Compile-time interface check.
var _ TemplateRenderer = (*HTMLTemplateRenderer)(nil)

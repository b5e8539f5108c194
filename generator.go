package resumaker

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumeGenerator produces one PDF per selected language variant.
type ResumeGenerator interface {
	// Generate returns the absolute paths of the PDFs produced, in file
	// order. Failures are logged and never returned.
	Generate(ctx context.Context, resumePath string, params GenerateParams) []string
}

// Generator runs locate, filter, render and convert sequentially, skipping
// any variant whose render or conversion fails.
type Generator struct {
	resumes   ResumeLocator
	renderer  TemplateRenderer
	converter PDFConverter
	logger    *zap.Logger
}

// NewGenerator wires the three stages together. Relevant option: WithLogger.
func NewGenerator(resumes ResumeLocator, renderer TemplateRenderer, converter PDFConverter, opts ...Option) *Generator {
	o := newOptions(opts)
	return &Generator{
		resumes:   resumes,
		renderer:  renderer,
		converter: converter,
		logger:    o.logger,
	}
}

// Generate implements ResumeGenerator.
func (g *Generator) Generate(ctx context.Context, resumePath string, params GenerateParams) []string {
	log := g.logger.With(zap.String("run_id", uuid.NewString()))

	all, err := g.resumes.GetResume(resumePath)
	if err != nil {
		log.Error("Unable to load resumes", zap.String("path", resumePath), zap.Error(err))
	}

	selected := filterByLanguage(all, params.Languages)
	if len(params.Languages) == 0 {
		log.Info("No language provided, generating every language in the file")
	}
	log.Info("Generating resumes for languages", zap.Strings("languages", languageNames(selected)))
	if missing := missingLanguages(all, params.Languages); err == nil && len(missing) > 0 {
		log.Warn("Requested languages not found in resume file",
			zap.Strings("languages", missing),
			zap.Strings("available", AvailableLanguages(all)),
		)
	}
	for _, dup := range duplicateLanguages(selected) {
		log.Warn("Language appears more than once, the last entry overwrites earlier output", zap.String("language", dup))
	}

	produced := make([]string, 0, len(selected))
	for i, resume := range selected {
		if ctx.Err() != nil {
			log.Warn("Generation cancelled, skipping remaining languages",
				zap.Int("skipped", len(selected)-i),
				zap.Error(ctx.Err()),
			)
			break
		}

		path, ok := g.generateOne(ctx, log, resume, params)
		if ok {
			produced = append(produced, path)
		}
	}

	log.Info("Generation finished",
		zap.Int("attempted", len(selected)),
		zap.Int("produced", len(produced)),
	)
	return produced
}

// generateOne renders and converts a single variant.
func (g *Generator) generateOne(ctx context.Context, log *zap.Logger, resume Resume, params GenerateParams) (string, bool) {
	lang := resume.Language.Name
	log = log.With(zap.String("language", lang))
	start := time.Now()

	html, err := g.renderer.Render(ctx, params.Template, resume)
	if err != nil {
		log.Error("Unable to render template", zap.String("template", params.Template), zap.Error(err))
		return "", false
	}
	log.Debug("Template rendered", zap.Int("bytes", len(html)))

	// Joined with "/" so OutDir keeps its user-facing form until located.
	outPath := params.OutDir + "/" + lang + ".pdf"
	path, err := g.converter.Convert(ctx, html, outPath)
	if err != nil {
		log.Error("Unable to generate PDF", zap.String("output", outPath), zap.Error(err))
		return "", false
	}

	log.Info("Generated PDF", zap.String("path", path))
	log.Debug("Language done", zap.Duration("duration", time.Since(start)))
	return path, true
}

// filterByLanguage keeps entries whose language name is requested, in file
// order. An empty request keeps everything.
func filterByLanguage(resumes []Resume, languages []string) []Resume {
	if len(languages) == 0 {
		return resumes
	}

	wanted := make(map[string]struct{}, len(languages))
	for _, l := range languages {
		wanted[l] = struct{}{}
	}

	out := make([]Resume, 0, len(resumes))
	for _, r := range resumes {
		if _, ok := wanted[r.Language.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// missingLanguages returns requested names absent from the file, sorted.
func missingLanguages(resumes []Resume, languages []string) []string {
	var missing []string
	for _, l := range languages {
		found := slices.ContainsFunc(resumes, func(r Resume) bool {
			return r.Language.Name == l
		})
		if !found && !slices.Contains(missing, l) {
			missing = append(missing, l)
		}
	}
	slices.Sort(missing)
	return missing
}

func languageNames(resumes []Resume) []string {
	names := make([]string, len(resumes))
	for i, r := range resumes {
		names[i] = r.Language.Name
	}
	return names
}

// AvailableLanguages lists the distinct language names of a résumé file in
// file order.
func AvailableLanguages(resumes []Resume) []string {
	seen := make(map[string]struct{}, len(resumes))
	var names []string
	for _, r := range resumes {
		if _, ok := seen[r.Language.Name]; ok {
			continue
		}
		seen[r.Language.Name] = struct{}{}
		names = append(names, r.Language.Name)
	}
	return names
}

// duplicateLanguages returns language names occurring more than once, in
// order of their second occurrence.
func duplicateLanguages(resumes []Resume) []string {
	counts := make(map[string]int, len(resumes))
	var dups []string
	for _, r := range resumes {
		counts[r.Language.Name]++
		if counts[r.Language.Name] == 2 {
			dups = append(dups, r.Language.Name)
		}
	}
	return dups
}

// Compile-time interface check.
var _ ResumeGenerator = (*Generator)(nil)

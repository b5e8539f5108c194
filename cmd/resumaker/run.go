package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	resumaker "github.com/alnah/go-resumaker"
	"github.com/alnah/go-resumaker/internal/config"
	"github.com/alnah/go-resumaker/internal/hints"
	"github.com/alnah/go-resumaker/internal/logging"
	"github.com/alnah/go-resumaker/internal/yamlutil"
)

// Sentinel errors for CLI arguments.
var (
	ErrNoInput     = errors.New("no résumé file specified")
	ErrTooManyArgs = errors.New("expected exactly one résumé file")
)

// run resolves the configuration, wires the pipeline and generates every
// requested language. Only setup errors are returned.
func run(ctx context.Context, positionalArgs []string, flags *cliFlags, env *Environment) error {
	resumePath, err := resolveInput(positionalArgs)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flags.common.printConfig {
		out, err := yamlutil.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	logger := logging.New(level, env.Stderr)
	defer func() { _ = logger.Sync() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))

	for _, name := range unknownEnvVars(env.Environ()) {
		logger.Warn("Unknown environment variable (typo?)", zap.String("name", name))
	}

	opts, err := buildOptions(cfg, logger)
	if err != nil {
		return err
	}

	files, err := resumaker.NewFSLocator("")
	if err != nil {
		return err
	}

	conv, err := env.NewConverter(files, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := conv.Close(); err != nil {
			logger.Debug("Unable to close browser", zap.Error(err))
		}
	}()

	resumes := &hintedResumeLocator{next: resumaker.NewJSONResumeLocator(files, opts...), workDir: files.Root()}
	gen := resumaker.NewGenerator(
		resumes,
		&hintedRenderer{next: resumaker.NewHTMLTemplateRenderer(files, opts...)},
		&hintedConverter{next: conv, engine: cfg.PDF.Engine},
		opts...,
	)

	params := generateParams(cfg)
	start := env.Now()
	outputs := gen.Generate(ctx, resumePath, params)

	for _, p := range outputs {
		fmt.Fprintln(env.Stdout, p)
	}
	if len(outputs) == 0 && len(params.Languages) > 0 && len(resumes.loaded) > 0 {
		logger.Warn("No PDF produced" + hints.ForUnknownLanguages(resumaker.AvailableLanguages(resumes.loaded)))
	}
	logger.Debug("Run complete", zap.Duration("elapsed", env.Now().Sub(start)))
	return nil
}

// resolveInput returns the single résumé path argument.
func resolveInput(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w, got %d: %s", ErrTooManyArgs, len(args), strings.Join(args, " "))
	}
}

// loadConfig loads the config named by the flag, else by RESUMAKER_CONFIG.
// With neither set the defaults are returned.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(userConfigPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// userConfigPaths lists where a named config is looked up in the user
// config directory.
func userConfigPaths(name string) []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, config.ConfigDirName, name+".yaml")}
}

// mergeFlags copies explicitly set flags into cfg (flags win).
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.changed("outDir") {
		cfg.Output.Dir = f.output.outDir
	}
	if f.changed("template") {
		cfg.Template.Name = f.output.template
	}
	if f.changed("language") {
		cfg.Languages = f.output.languages
	}
	if f.changed("strict") {
		cfg.Template.Strict = f.output.strict
	}
	if f.changed("log-level") {
		cfg.Log.Level = f.common.logLevel
	}
	if f.changed("engine") {
		cfg.PDF.Engine = f.pdf.engine
	}
	if f.changed("timeout") {
		cfg.PDF.Timeout = f.pdf.timeout
	}
	if f.changed("page-size") {
		cfg.Page.Size = f.page.size
	}
	if f.changed("orientation") {
		cfg.Page.Orientation = f.page.orientation
	}
	if f.changed("margin") {
		cfg.Page.Margin = f.page.margin
	}
	if f.changed("no-background") {
		cfg.Page.NoBackground = f.page.noBG
	}
	if f.changed("asset-path") {
		cfg.Assets.BasePath = f.assets.assetPath
	}
	if f.changed("no-schema") {
		cfg.Resume.SkipSchema = f.pdf.noSchema
	}
}

// buildOptions turns the merged configuration into library options.
func buildOptions(cfg *config.Config, logger *zap.Logger) ([]resumaker.Option, error) {
	opts := []resumaker.Option{
		resumaker.WithLogger(logger),
		resumaker.WithStrict(cfg.Template.Strict),
		resumaker.WithSchemaValidation(!cfg.Resume.SkipSchema),
		resumaker.WithEngine(strings.ToLower(cfg.PDF.Engine)),
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, resumaker.WithTimeout(timeout))
	}

	if page := pageSettings(cfg); page != nil {
		opts = append(opts, resumaker.WithPageSettings(page))
	}

	if cfg.Assets.BasePath != "" {
		loader, err := resumaker.NewAssetLoader(cfg.Assets.BasePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, resumaker.WithAssetLoader(loader))
	}

	return opts, nil
}

// pageSettings returns nil when no page field is configured, so the library
// defaults apply. Unset fields take their default value.
func pageSettings(cfg *config.Config) *resumaker.PageSettings {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 && !cfg.Page.NoBackground {
		return nil
	}
	page := resumaker.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}
	page.NoBackground = cfg.Page.NoBackground
	return page
}

// generateParams fills GenerateParams from cfg, keeping defaults for unset
// fields.
func generateParams(cfg *config.Config) resumaker.GenerateParams {
	params := resumaker.DefaultGenerateParams()
	if cfg.Output.Dir != "" {
		params.OutDir = strings.TrimSuffix(cfg.Output.Dir, "/")
	}
	if cfg.Template.Name != "" {
		params.Template = cfg.Template.Name
	}
	params.Languages = cfg.Languages
	return params
}

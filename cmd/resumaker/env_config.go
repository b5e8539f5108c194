package main

import (
	"os"
	"strings"

	"github.com/alnah/go-resumaker/internal/config"
)

// envConfig holds configuration from RESUMAKER_* environment variables.
type envConfig struct {
	ConfigPath string   // RESUMAKER_CONFIG
	OutDir     string   // RESUMAKER_OUT_DIR
	Template   string   // RESUMAKER_TEMPLATE
	Languages  []string // RESUMAKER_LANGUAGES, comma separated
	LogLevel   string   // RESUMAKER_LOG_LEVEL
	Engine     string   // RESUMAKER_ENGINE
	Timeout    string   // RESUMAKER_TIMEOUT, Go duration
	AssetPath  string   // RESUMAKER_ASSET_PATH
}

// knownEnvVars lists valid RESUMAKER_* environment variables.
var knownEnvVars = map[string]bool{
	"RESUMAKER_CONFIG":     true,
	"RESUMAKER_OUT_DIR":    true,
	"RESUMAKER_TEMPLATE":   true,
	"RESUMAKER_LANGUAGES":  true,
	"RESUMAKER_LOG_LEVEL":  true,
	"RESUMAKER_ENGINE":     true,
	"RESUMAKER_TIMEOUT":    true,
	"RESUMAKER_ASSET_PATH": true,
}

// loadEnvConfig reads the RESUMAKER_* variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("RESUMAKER_CONFIG"),
		OutDir:     os.Getenv("RESUMAKER_OUT_DIR"),
		Template:   os.Getenv("RESUMAKER_TEMPLATE"),
		Languages:  splitList(os.Getenv("RESUMAKER_LANGUAGES")),
		LogLevel:   os.Getenv("RESUMAKER_LOG_LEVEL"),
		Engine:     os.Getenv("RESUMAKER_ENGINE"),
		Timeout:    os.Getenv("RESUMAKER_TIMEOUT"),
		AssetPath:  os.Getenv("RESUMAKER_ASSET_PATH"),
	}
}

// splitList splits a comma separated list, dropping blank items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// unknownEnvVars returns RESUMAKER_* names that are not recognized, which
// usually means a typo.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, "RESUMAKER_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// applyEnvConfig overrides config file values with the variables that are set.
// Precedence: flags > env vars > config file > defaults
// (flags are applied afterwards by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutDir != "" {
		cfg.Output.Dir = env.OutDir
	}
	if env.Template != "" {
		cfg.Template.Name = env.Template
	}
	if len(env.Languages) > 0 {
		cfg.Languages = env.Languages
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.Engine != "" {
		cfg.PDF.Engine = env.Engine
	}
	if env.Timeout != "" {
		cfg.PDF.Timeout = env.Timeout
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}

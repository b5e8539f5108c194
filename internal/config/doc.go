// Package config loads the optional YAML configuration file of the
// resumaker CLI. Values found here sit between the built-in defaults and the
// RESUMAKER_* environment variables in precedence.
package config

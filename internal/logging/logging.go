// Package logging builds the zap logger shared by the generator and the CLI.
//
// Verbosity is chosen once at startup from a Level value; nothing reaches into
// the logger afterwards to change it.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidLevel indicates an unknown verbosity name.
var ErrInvalidLevel = errors.New("invalid log level")

// Level is the verbosity requested by the user.
type Level int

// Verbosity levels, least to most verbose.
const (
	LevelInfo Level = iota
	LevelDebug
	LevelTrace
)

// DefaultLevel is used when nothing is configured.
const DefaultLevel = LevelInfo

var levelNames = map[Level]string{
	LevelInfo:  "info",
	LevelDebug: "debug",
	LevelTrace: "trace",
}

// String returns the lowercase level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel accepts info, debug or trace (case-insensitive).
// An empty string yields DefaultLevel.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return DefaultLevel, nil
	}
	for lvl, n := range levelNames {
		if n == name {
			return lvl, nil
		}
	}
	return DefaultLevel, fmt.Errorf("%w: %q (must be info, debug, or trace)", ErrInvalidLevel, s)
}

// LevelNames lists accepted level names in verbosity order.
func LevelNames() []string {
	return []string{LevelInfo.String(), LevelDebug.String(), LevelTrace.String()}
}

// zapLevel maps a Level to the zap threshold. Trace shares zap's debug
// threshold and differs by the caller and stacktrace annotations.
func (l Level) zapLevel() zapcore.Level {
	if l >= LevelDebug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// New builds a console logger writing to w.
func New(level Level, w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if level < LevelTrace {
		encCfg.CallerKey = zapcore.OmitKey
		encCfg.StacktraceKey = zapcore.OmitKey
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level.zapLevel()),
	)

	opts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(w))}
	if level >= LevelTrace {
		opts = append(opts, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return zap.New(core, opts...).Named("resumaker")
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/balkashynov/learnlog/internal/config"
)

// Component tags a log line with the part of the app that wrote it
type Component string

const (
	TypeApp     Component = "app"
	TypeDB      Component = "db"
	TypeHTTP    Component = "http"
	TypeCommand Component = "cmd"
)

// Logger wraps zerolog with the component field the app logs by
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New builds a logger from config. Console output goes to stderr so it never
// mixes with command output; when a file is configured JSON lines are
// appended to it.
func New(conf config.LoggerConfig) (*Logger, error) {
	level, err := zerolog.ParseLevel(conf.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Level, err)
	}

	var writers []io.Writer
	if conf.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}

	var closer io.Closer
	if conf.File != "" {
		if err := os.MkdirAll(filepath.Dir(conf.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(conf.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl, closer: closer}, nil
}

// NewWriter logs JSON lines to w, used by tests and embedders
func NewWriter(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Nop discards everything
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// For returns a zerolog logger tagged with the component
func (l *Logger) For(c Component) *zerolog.Logger {
	zl := l.zl.With().Str("component", string(c)).Logger()
	return &zl
}

func (l *Logger) Debugf(c Component, format string, args ...interface{}) {
	l.For(c).Debug().Msgf(format, args...)
}

func (l *Logger) Infof(c Component, format string, args ...interface{}) {
	l.For(c).Info().Msgf(format, args...)
}

func (l *Logger) Warnf(c Component, format string, args ...interface{}) {
	l.For(c).Warn().Msgf(format, args...)
}

func (l *Logger) Errorf(c Component, format string, args ...interface{}) {
	l.For(c).Error().Msgf(format, args...)
}

// Close releases the log file, if any
func (l *Logger) Close() {
	if l.closer != nil {
		_ = l.closer.Close()
	}
}

package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log output formats accepted by LoggerOptions.Format
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Field names attached by the With helpers
const (
	FieldComponent = "component"
	FieldProject   = "project"
	FieldList      = "list"
	FieldTask      = "task"
)

// Logger is a wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger
type LoggerOptions struct {
	Level   string
	Format  string // FormatPretty or FormatJSON
	Output  io.Writer
	Verbose bool
}

// NewLogger creates a new logger with the given options. Output defaults to
// stderr so it never mixes with the summaries commands print on stdout.
func NewLogger(opts LoggerOptions) *Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}

	if opts.Format == FormatPretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.TimeOnly,
		}
	}

	level := parseLogLevel(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{
		Logger: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

// NewNopLogger returns a logger that writes nothing
func NewNopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// parseLogLevel maps a configured level onto zerolog, falling back to info
// for empty or unknown values
func parseLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

func (l *Logger) with(key, value string) *Logger {
	return &Logger{Logger: l.Logger.With().Str(key, value).Logger()}
}

// WithComponent returns a logger with a component field
func (l *Logger) WithComponent(component string) *Logger {
	return l.with(FieldComponent, component)
}

// WithProject returns a logger with a project field
func (l *Logger) WithProject(project string) *Logger {
	return l.with(FieldProject, project)
}

// WithList returns a logger with a list field
func (l *Logger) WithList(name string) *Logger {
	return l.with(FieldList, name)
}

// WithTask returns a logger with the build task name of a list
func (l *Logger) WithTask(task string) *Logger {
	return l.with(FieldTask, task)
}

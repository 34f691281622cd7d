package testutil

import (
	"bytes"
	"io"
	"testing"

	"github.com/quantmind-br/resourcelist-go/internal/utils"
	"github.com/rs/zerolog"
)

// NewTestLogger creates a test logger that discards output
func NewTestLogger(t *testing.T) *utils.Logger {
	t.Helper()

	zlogger := zerolog.New(io.Discard).With().
		Timestamp().
		Str("test", t.Name()).
		Logger()

	return &utils.Logger{Logger: zlogger}
}

// NewNoOpLogger creates a logger that discards all output
func NewNoOpLogger() *utils.Logger {
	return utils.NewNopLogger()
}

// NewBufferLogger creates a JSON logger writing into the returned buffer
func NewBufferLogger(t *testing.T) (*utils.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})
	return logger, &buf
}

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestSlogAdapterFormats(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerTo(&buf, LogLevelInfo, "json", false)
	logger.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), `"key":"value"`)

	buf.Reset()
	logger = NewSlogLoggerTo(&buf, LogLevelInfo, "text", false)
	logger.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), "key=value")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerTo(&buf, LogLevelError, "text", false)
	logger.Info("ignored")
	assert.Empty(t, buf.String())
	logger.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestLogGenerationCall(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerTo(&buf, LogLevelInfo, "text", false)

	LogGenerationCall(logger, "openai", 10*time.Millisecond, true, nil)
	assert.Contains(t, buf.String(), "generation call completed")

	buf.Reset()
	LogGenerationCall(logger, "anthropic", time.Millisecond, false, errors.New("boom"))
	out := buf.String()
	assert.Contains(t, out, "generation call failed")
	assert.Contains(t, out, "boom")

	// nil logger must be a no-op, not a panic
	LogGenerationCall(nil, "openai", 0, true, nil)
}

func TestLogPipelineRun(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerTo(&buf, LogLevelInfo, "text", false)
	LogPipelineRun(logger, "Phase 2: Smart A2A", 5, time.Second)
	assert.True(t, strings.Contains(buf.String(), "step_count=5"))
}

func TestOrNoOp(t *testing.T) {
	assert.IsType(t, NoOpLogger{}, OrNoOp(nil))
	logger := NewDefaultSlogLogger()
	assert.Equal(t, logger, OrNoOp(logger))
}

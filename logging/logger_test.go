package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Debug("debug message", "k", "v")
	logger.Info("info message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes()[:bytes.IndexByte(buf.Bytes(), '\n')], &record))
	assert.Equal(t, "debug message", record["msg"])
	assert.Equal(t, "v", record["k"])
}

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger := WithRequest(base, "req-123", "/api/v1/task/text-generation", "flan-t5")
	logger.Debug("sending task request", "attempt", 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-123", record["request_id"])
	assert.Equal(t, "/api/v1/task/text-generation", record["endpoint"])
	assert.Equal(t, "flan-t5", record["model_id"])
	assert.Equal(t, float64(1), record["attempt"])
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	// Must not panic or produce output.
	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
}

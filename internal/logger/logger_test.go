package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")
	l.Debug("hello", "loan_id", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, float64(3), rec["loan_id"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "text")
	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
	assert.Equal(t, slog.LevelError, parseLevel("ERROR"))
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "info", Format: "console", Output: &buf})

	lg.Debug("hidden")
	lg.With("scene", "playing").WithGroup("roll").Info("roll started", "ticks", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "roll started")
	assert.Contains(t, out, "scene=playing")
	assert.Contains(t, out, "roll.ticks=3")
	assert.NotContains(t, out, "roll.scene")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "debug", Format: "json", Output: &buf})

	lg.Debug("action state changed", "from", "Idle", "to", "Walk")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "action state changed", rec["msg"])
	assert.Equal(t, "Walk", rec["to"])
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/readage/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", slog.String("term", "bank"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "bank", rec["term"])
	assert.NotContains(t, rec, "source")
}

func TestNew_TextAddsSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, config.LogConfig{Level: "debug", Format: "text"}).Debug("hello")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "source=")
}

func TestNewLogger_WritesToFileInDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	logger, closer := NewLogger(config.LogConfig{Level: "info", Format: "json", MaxSizeMB: 1}, dir)
	logger.Info("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written"`)
	assert.Same(t, logger, slog.Default())
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for name, expected := range cases {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNew_ConsoleLevelFilter(t *testing.T) {
	var console bytes.Buffer

	logger, closeFn, err := New(Options{Level: "warn", Console: &console})
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "address", 0x1000)

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
	assert.Contains(t, console.String(), "address=4096")
}

func TestNew_FanoutToJSONFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "tricore.log")

	logger, closeFn, err := New(Options{Level: "error", File: path, Console: &console})
	require.NoError(t, err)

	logger.Debug("decoded section", "name", ".text")
	require.NoError(t, closeFn())

	assert.Empty(t, console.String())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "decoded section", record["msg"])
	assert.Equal(t, ".text", record["name"])
	assert.Equal(t, "DEBUG", record["level"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(Options{Level: "verbose"})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

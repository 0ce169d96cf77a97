package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, closeFn, err := New(Options{})
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "covidboard.log")

	logger, closeFn, err := New(Options{Path: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("fetch applied", zap.String("op", "country"), zap.String("code", "US"))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "fetch applied", record["msg"])
	assert.Equal(t, "debug", record["level"])
	assert.Equal(t, "US", record["code"])
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, closeFn, err := New(Options{Path: path, Level: "warn"})
	require.NoError(t, err)
	logger.Info("quiet")
	logger.Warn("loud")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

package providers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/lquan-tech/porfolio/internal/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggerConfig(dir string) *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "debug",
			Mode:  0644,
			Dir:   dir,
		},
	}
}

func TestLogProvider_CreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypePresence, "poll %s", "ok")

	data, err := os.ReadFile(filepath.Join(dir, "porfolio.log"))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "presence", entry["type"])
	assert.Equal(t, "poll ok", entry["message"])
}

func TestLogProvider_InvalidDir(t *testing.T) {
	_, err := NewLogProvider(loggerConfig("/nonexistent/path/for/sure"))
	assert.Error(t, err)
}

func TestLogProvider_InvalidLevel(t *testing.T) {
	conf := loggerConfig(t.TempDir())
	conf.Logger.Level = "loud"

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestLogProvider_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	conf := loggerConfig(dir)
	conf.Logger.Level = "warn"

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Debugf(TypeApp, "dropped")
	logger.Infof(TypeApp, "dropped")
	logger.Warnf(TypeApp, "kept")

	data, err := os.ReadFile(filepath.Join(dir, "porfolio.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

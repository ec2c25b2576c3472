package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"usersapp/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNilLoggerSafety(t *testing.T) {
	log = nil

	Debug("test debug")
	Info("test info")
	Warn("test warn")
	Error("test error")

	testLogger := With(zap.String("key", "value"))
	require.NotNil(t, testLogger)
	testLogger.Info("test with")

	assert.NoError(t, Sync())
}

func TestDevelopmentConfig(t *testing.T) {
	devConfig := &config.LogConfig{
		Level:  "debug",
		Output: "stderr",
	}

	require.NoError(t, Init(devConfig, true))
	defer Sync()

	Info("Development logger initialized", zap.String("env", "development"))
	Debug("Debug message should appear")
	Warn("Warning message with fields", zap.String("component", "test"), zap.Int("value", 42))

	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init(&config.LogConfig{Level: "bogus", Output: "stderr"}, true))
	defer Sync()

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestEncoderFollowsEnvironment(t *testing.T) {
	dir := t.TempDir()
	for _, tt := range []struct {
		development bool
		wantJSON    bool
	}{
		{true, false},
		{false, true},
	} {
		path := filepath.Join(dir, fmt.Sprintf("dev-%t.log", tt.development))
		require.NoError(t, Init(&config.LogConfig{Level: "info", Output: "file", FilePath: path}, tt.development))
		Info("hello")
		require.NoError(t, Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, tt.wantJSON, strings.HasPrefix(string(data), "{"), string(data))
	}
}

func TestFileOutput(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "logs", "test_file.log")

	fileConfig := &config.LogConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: testFile,
	}

	require.NoError(t, Init(fileConfig, false))

	Info("File logger initialized")
	Error("Error message to file")
	for i := 0; i < 10; i++ {
		Info("Log entry for test", zap.Int("entry", i))
	}
	require.NoError(t, Sync())

	fileInfo, err := os.Stat(testFile)
	require.NoError(t, err, "log file not created")
	assert.NotZero(t, fileInfo.Size())

	data, err := os.ReadFile(testFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"File logger initialized"`)
}

func TestProductionConfig(t *testing.T) {
	require.NoError(t, Init(&config.LogConfig{Level: "info", Output: "stdout"}, false))
	defer Sync()

	Info("Production logger initialized", zap.String("env", "production"))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	With(zap.String("action", "list")).Debug("dispatch")
	Warn("careful")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "list", logs.All()[0].ContextMap()["action"])

	restore()
	Warn("not captured")
	assert.Equal(t, 2, logs.Len())
}

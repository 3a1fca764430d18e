package clog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"warn", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"fatal", FatalLevel, false},
		{"verbose", InfoLevel, true},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input=%s", tt.input)
			continue
		}
		require.NoError(t, err, "input=%s", tt.input)
		assert.Equal(t, tt.expected, level, "input=%s", tt.input)
	}
}

func TestConfigValidate(t *testing.T) {
	// 空配置应回填默认值
	cfg := &Config{}
	require.NoError(t, cfg.validate())
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)

	// 非法级别应报错
	assert.Error(t, (&Config{Level: "loud"}).validate())

	// 非法格式应报错
	assert.Error(t, (&Config{Format: "xml"}).validate())
}

func TestNewWithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(&Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info("id generated", Int64("id", 17592186048512), String("strategy", "lazy"))
	logger.Debug("sequence wrapped", Int("sequence", 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "id generated")
	assert.Contains(t, content, "sequence wrapped")
	assert.Contains(t, content, `"strategy":"lazy"`)
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(&Config{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Debug("should be filtered")
	logger.Info("should be filtered too")
	logger.Warn("should appear")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "should be filtered")
	assert.Contains(t, content, "should appear")
}

func TestWith(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(&Config{Format: "json", Output: path})
	require.NoError(t, err)

	child := logger.With(String("component", "idgen"))
	child.Info("bucket refilled")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"idgen"`)
}

func TestDiscard(t *testing.T) {
	logger := Discard()

	// 所有方法都不应 panic
	logger.Debug("msg")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg")
	logger.With(String("k", "v")).Info("msg")
}

func TestDefault(t *testing.T) {
	logger := Default()
	require.NotNil(t, logger)

	// 多次调用应返回同一实例
	assert.True(t, logger == Default())
}

func TestErrorField(t *testing.T) {
	f := Error(nil)
	assert.Equal(t, "error", f.Key)
	assert.True(t, strings.Contains(f.Value.String(), "nil"))
}

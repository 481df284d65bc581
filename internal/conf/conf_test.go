package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaults(t *testing.T) {
	conf, err := NewConfig("", true)
	require.NoError(t, err)
	assert.Equal(t, SourceLoopback, conf.Source)
	assert.Equal(t, ":9480", conf.Prometheus.Listen)
	assert.Equal(t, "/metrics", conf.Prometheus.Path)
	assert.Equal(t, "rtcstats", conf.Prometheus.Namespace)
	assert.Equal(t, 5*time.Second, conf.Prometheus.Timeout)
	assert.Len(t, conf.StatsOptions(nil), 1)

	logger, err := conf.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewConfig(t *testing.T) {
	conf, err := NewConfig(`
log_level: debug
source: fixture
fixture: testdata/connected.yaml
skip_unknown_types: true
prometheus:
  listen: 127.0.0.1:9000
  timeout: 250ms
  const_labels:
    peer: caller
`, true)
	require.NoError(t, err)
	assert.Equal(t, SourceFixture, conf.Source)
	assert.Equal(t, "testdata/connected.yaml", conf.Fixture)
	assert.Equal(t, "127.0.0.1:9000", conf.Prometheus.Listen)
	assert.Equal(t, 250*time.Millisecond, conf.Prometheus.Timeout)
	assert.Equal(t, map[string]string{"peer": "caller"}, conf.Prometheus.ConstLabels)
	// unset keys keep their defaults
	assert.Equal(t, "rtcstats", conf.Prometheus.Namespace)
	assert.Len(t, conf.StatsOptions(nil), 2)

	logger, err := conf.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	// the defaults are not modified by a decode
	assert.Nil(t, DefaultConfig.Prometheus.ConstLabels)
	assert.Equal(t, SourceLoopback, DefaultConfig.Source)
}

func TestNewConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		conf   string
		strict bool
	}{
		{"unknown source", "source: carrier-pigeon", false},
		{"fixture without path", "source: fixture", false},
		{"bad level", "log_level: loud", false},
		{"negative timeout", "prometheus: {timeout: -1s}", false},
		{"zero timeout", "prometheus: {timeout: 0s}", false},
		{"unknown key strict", "sauce: fixture", true},
		{"malformed", "source: [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.conf, tt.strict)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := NewConfig("sauce: fixture", false)
	assert.NoError(t, err)
}

func TestDevelopmentLogger(t *testing.T) {
	conf, err := NewConfig("development: true", true)
	require.NoError(t, err)
	logger, err := conf.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	// an explicit level wins over development
	conf, err = NewConfig("development: true\nlog_level: info", true)
	require.NoError(t, err)
	logger, err = conf.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	conf, err = NewConfig("log_level: warn", true)
	require.NoError(t, err)
	logger, err = conf.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtcstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: rtp\n"), 0o644))

	conf, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, SourceRTP, conf.Source)
	assert.Contains(t, conf.String(), "source: rtp")

	conf, err = Load("", true)
	require.NoError(t, err)
	assert.Equal(t, SourceLoopback, conf.Source)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

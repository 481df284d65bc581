// Package conf loads the rtcstats command configuration.
package conf

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

// Report sources.
const (
	SourceFixture  = "fixture"
	SourceLoopback = "loopback"
	SourceNative   = "native"
	SourceRTP      = "rtp"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	LogLevel    string `yaml:"log_level,omitempty"`
	Development bool   `yaml:"development,omitempty"`

	// Source selects where reports come from.
	Source string `yaml:"source"`

	// Fixture is the snapshot file read by the fixture source.
	Fixture          string `yaml:"fixture,omitempty"`
	SkipUnknownTypes bool   `yaml:"skip_unknown_types,omitempty"`

	Prometheus PrometheusConfig `yaml:"prometheus,omitempty"`
}

type PrometheusConfig struct {
	Listen    string        `yaml:"listen"`
	Path      string        `yaml:"path"`
	Namespace string        `yaml:"namespace"`
	Timeout   time.Duration `yaml:"timeout"`

	// ConstLabels are attached to every exported series.
	ConstLabels map[string]string `yaml:"const_labels,omitempty"`
}

// DefaultConfig leaves LogLevel empty: info, or debug in development.
var DefaultConfig = Config{
	Source: SourceLoopback,
	Prometheus: PrometheusConfig{
		Listen:    ":9480",
		Path:      "/metrics",
		Namespace: "rtcstats",
		Timeout:   5 * time.Second,
	},
}

// NewConfig applies confString on top of DefaultConfig. In strict mode
// unknown keys are rejected.
func NewConfig(confString string, strict bool) (*Config, error) {
	conf := DefaultConfig
	conf.Prometheus.ConstLabels = nil

	if strings.TrimSpace(confString) != "" {
		decoder := yaml.NewDecoder(strings.NewReader(confString))
		decoder.KnownFields(strict)
		if err := decoder.Decode(&conf); err != nil {
			return nil, errors.Wrapf(ErrInvalid, "could not parse config: %v", err)
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Load reads a config file. An empty path yields the defaults.
func Load(path string, strict bool) (*Config, error) {
	if path == "" {
		return NewConfig("", strict)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return NewConfig(string(data), strict)
}

func (conf *Config) Validate() error {
	switch conf.Source {
	case SourceFixture:
		if conf.Fixture == "" {
			return errors.Wrap(ErrInvalid, "fixture source needs a fixture path")
		}
	case SourceLoopback, SourceNative, SourceRTP:
	default:
		return errors.Wrapf(ErrInvalid, "unknown source %q", conf.Source)
	}
	if _, err := zap.ParseAtomicLevel(conf.level()); err != nil {
		return errors.Wrapf(ErrInvalid, "log level: %v", err)
	}
	if conf.Prometheus.Timeout <= 0 {
		return errors.Wrapf(ErrInvalid, "prometheus timeout %s is not positive", conf.Prometheus.Timeout)
	}
	return nil
}

func (conf *Config) level() string {
	if conf.LogLevel == "" && conf.Development {
		return "debug"
	}
	if conf.LogLevel == "" {
		return "info"
	}
	return conf.LogLevel
}

// Logger builds the process logger.
func (conf *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(conf.level())
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "log level: %v", err)
	}
	zc := zap.NewProductionConfig()
	if conf.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

// StatsOptions returns the construction options the config asks for.
func (conf *Config) StatsOptions(logger *zap.Logger) []stats.Option {
	opts := []stats.Option{stats.WithLogger(logger)}
	if conf.SkipUnknownTypes {
		opts = append(opts, stats.WithSkipUnknownTypes())
	}
	return opts
}

func (conf *Config) String() string {
	out, err := yaml.Marshal(conf)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

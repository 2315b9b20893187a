package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding configuration values.
const (
	EnvPasses     = "ASTPASS_PASSES"
	EnvUsage      = "ASTPASS_USAGE"
	EnvColor      = "ASTPASS_COLOR"
	EnvLogLevel   = "ASTPASS_LOG_LEVEL"
	EnvLogFormat  = "ASTPASS_LOG_FORMAT"
	EnvMaxReports = "ASTPASS_MAX_REPORTS"
)

// Config is the astpass configuration.
type Config struct {
	// Passes lists tree rewriting passes in the order they run.
	Passes []Pass `yaml:"passes"`
	// Usage enables the variable definition and use analysis.
	Usage bool `yaml:"usage"`
	// Color controls colored report output.
	Color ColorMode `yaml:"color"`
	// Log sets up logging.
	Log Log `yaml:"log"`
	// MaxReports limits the number of kept reports, zero means no limit.
	MaxReports int `yaml:"max_reports"`
}

// Log is the logging section of the configuration.
type Log struct {
	Level  zapcore.Level `yaml:"level"`
	Format LogFormat     `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Passes: []Pass{PassPrune, PassInline, PassNormalize},
		Usage:  true,
		Color:  ColorAuto,
		Log: Log{
			Level:  zapcore.InfoLevel,
			Format: LogConsole,
		},
	}
}

// Load reads the configuration file at path. Values missing in the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// Parse decodes YAML configuration over the defaults. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides configuration values with ASTPASS_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := env.Str(EnvPasses); v != "" {
		passes, err := ParsePasses(v)
		if err != nil {
			return errors.Wrap(err, EnvPasses)
		}
		c.Passes = passes
	}

	if env.Str(EnvUsage) != "" {
		c.Usage = env.Bool(EnvUsage)
	}

	if v := env.Str(EnvColor); v != "" {
		if err := c.Color.UnmarshalText([]byte(v)); err != nil {
			return errors.Wrap(err, EnvColor)
		}
	}

	if v := env.Str(EnvLogLevel); v != "" {
		if err := c.Log.Level.UnmarshalText([]byte(v)); err != nil {
			return errors.Wrap(err, EnvLogLevel)
		}
	}

	if v := env.Str(EnvLogFormat); v != "" {
		if err := c.Log.Format.UnmarshalText([]byte(v)); err != nil {
			return errors.Wrap(err, EnvLogFormat)
		}
	}

	c.MaxReports = env.Int(EnvMaxReports, c.MaxReports)

	return c.Validate()
}

// Validate checks the configuration is consistent.
func (c *Config) Validate() error {
	seen := map[Pass]struct{}{}
	for _, p := range c.Passes {
		if _, err := p.MarshalText(); err != nil {
			return errors.Wrap(err, "validate passes")
		}
		if _, ok := seen[p]; ok {
			return errors.Errorf("pass %s is listed more than once", p)
		}
		seen[p] = struct{}{}
	}

	if c.MaxReports < 0 {
		return errors.Errorf("max_reports must not be negative, got %d", c.MaxReports)
	}

	return nil
}

// Has reports whether the pass is enabled.
func (c *Config) Has(p Pass) bool {
	for _, q := range c.Passes {
		if q == p {
			return true
		}
	}
	return false
}

// ParsePasses parses a comma separated list of pass names. "none" stands for an empty list.
func ParsePasses(s string) ([]Pass, error) {
	if strings.TrimSpace(s) == "none" {
		return []Pass{}, nil
	}

	var res []Pass
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var p Pass
		if err := p.UnmarshalText([]byte(part)); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return data, nil
}

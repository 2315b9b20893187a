package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Logger builds a logger according to the log section.
func (c *Config) Logger() (*zap.Logger, error) {
	var zc zap.Config
	switch c.Log.Format {
	case LogJSON:
		zc = zap.NewProductionConfig()
	default:
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.Log.Level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	log, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return log, nil
}

package log

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and destinations of the logger.
type Config struct {
	Level            string `json:"Level,omitempty" validate:"oneof=debug info warn error dpanic panic fatal"`
	OutputPaths      string `json:"OutputPaths,omitempty"`      // comma separated list of paths
	ErrorOutputPaths string `json:"ErrorOutputPaths,omitempty"` // comma separated list of paths
}

// New builds the JSON logger described by cfg and returns it with a function that flushes it.
// An empty level logs at info.
func New(cfg *Config) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(cfg.Level); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to parse log level")
		}
	}

	loggerCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          "json",
		OutputPaths:       splitPaths(cfg.OutputPaths),
		ErrorOutputPaths:  splitPaths(cfg.ErrorOutputPaths),
		DisableStacktrace: level > zapcore.DebugLevel,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			MessageKey:     "msg",
			LevelKey:       "level",
			CallerKey:      "caller",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
	}

	logger, err := loggerCfg.Build()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to build zap logger")
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func splitPaths(paths string) []string {
	if paths == "" {
		return nil
	}
	return strings.Split(paths, ",")
}

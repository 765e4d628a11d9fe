package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xsoar-content/k8s-automation/config"
	"github.com/xsoar-content/k8s-automation/log"
	"github.com/xsoar-content/k8s-automation/metrics"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"github.com/xsoar-content/k8s-automation/pkg/automation/scripts"
	"go.uber.org/zap"
)

// session is the state shared by one command invocation.
type session struct {
	config   config.Config
	logger   *zap.Logger
	registry *automation.Registry
	cleanup  func()
}

// readConfig loads the config file into viper, falling back to the defaults when it can't be read.
func readConfig() (string, error) {
	cfgFile := config.GetConfigPath()
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType(strings.TrimPrefix(filepath.Ext(cfgFile), "."))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		return viper.ConfigFileUsed(), nil
	}

	b, _ := json.Marshal(config.DefaultConfig)
	viper.SetConfigType("json")
	if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
		return "", fmt.Errorf("failed to read in default with err %w", err)
	}
	return "", nil
}

func overrideString(flags *pflag.FlagSet, name string, field *string) {
	if v, err := flags.GetString(name); err == nil && v != "" {
		*field = v
	}
}

// loadConfig returns the configuration with command line flags taking precedence.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg := config.Config{}
	used, err := readConfig()
	if err != nil {
		return cfg, "", err
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, "", fmt.Errorf("failed to load config with error %w", err)
	}

	flags := cmd.Flags()
	overrideString(flags, flagClusterName, &cfg.ClusterName)
	overrideString(flags, flagKubeConfigPath, &cfg.KubeConfigPath)
	overrideString(flags, flagNamespace, &cfg.Namespace)
	overrideString(flags, flagOutput, &cfg.OutputFormat)
	overrideString(flags, flagMetricsFile, &cfg.MetricsFile)
	overrideString(flags, flagLogLevel, &cfg.Log.Level)
	cfg.FillDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, used, nil
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, used, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, syncLogger, err := log.New(&cfg.Log)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("invocation", uuid.New().String()))
	restoreGlobals := zap.ReplaceGlobals(logger)

	if used != "" {
		logger.Info("Using config file", zap.String("path", used))
	} else {
		logger.Debug("No config file found, using defaults", zap.String("path", config.GetConfigPath()))
	}

	return &session{
		config:   cfg,
		logger:   logger,
		registry: scripts.Default(logger, cfg.ClusterName),
		cleanup: func() {
			restoreGlobals()
			syncLogger()
		},
	}, nil
}

func (s *session) retryDelay() time.Duration {
	return time.Duration(s.config.Retry.DelayMillis) * time.Millisecond
}

// write prints entry in the configured output format.
func (s *session) write(w io.Writer, entry *automation.Entry) error {
	if s.config.OutputFormat == config.OutputYAML {
		return automation.WriteEntryYAML(w, entry)
	}
	return automation.WriteEntry(w, entry)
}

// close exports metrics when a textfile is configured and flushes the logger.
func (s *session) close() {
	defer s.cleanup()
	if s.config.MetricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(s.config.MetricsFile); err != nil {
		s.logger.Error("Failed to write metrics", zap.String("path", s.config.MetricsFile), zap.Error(err))
	}
}

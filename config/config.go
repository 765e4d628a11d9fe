package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/xsoar-content/k8s-automation/log"
)

const (
	defaultRetryAttempts    = 3
	defaultRetryDelayMillis = 500
	defaultConfigPath       = "/etc/k8s-automation/config.json"
	// ConfigEnvPath is what's used by viper to load config path
	ConfigEnvPath = "K8S_AUTOMATION_CONFIG"
	// EnvPrefix is the prefix of environment variables bound to flags
	EnvPrefix = "K8S_AUTOMATION"
)

// Output formats of the result entries.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// DefaultConfig is the guaranteed configuration the scripts can run in out of the box
var DefaultConfig = Config{
	OutputFormat: OutputJSON,

	Log: log.Config{
		Level:            "info",
		OutputPaths:      "stderr",
		ErrorOutputPaths: "stderr",
	},

	Retry: RetryConfig{
		Attempts:    defaultRetryAttempts,
		DelayMillis: defaultRetryDelayMillis,
	},
}

type RetryConfig struct {
	// Attempts is the number of times a cluster request is tried
	Attempts uint `json:"Attempts,omitempty" validate:"gte=1"`
	// DelayMillis is the fixed delay between attempts
	DelayMillis int `json:"DelayMillis,omitempty" validate:"gte=0"`
}

type Config struct {
	// ClusterName is passed to scripts that take a ClusterName argument when the host does not set one
	ClusterName string `json:"ClusterName,omitempty"`

	KubeConfigPath string `json:"KubeConfigPath,omitempty"`
	Namespace      string `json:"Namespace,omitempty"`

	OutputFormat string `json:"OutputFormat,omitempty" validate:"oneof=json yaml"`
	MetricsFile  string `json:"MetricsFile,omitempty"`

	Log log.Config `json:"Log,omitempty"`

	Retry RetryConfig `json:"Retry,omitempty"`
}

// GetConfigPath returns the config file path from the environment, or the default location.
func GetConfigPath() string {
	if p := os.Getenv(ConfigEnvPath); p != "" {
		return p
	}
	return defaultConfigPath
}

// FillDefaults sets every unset field that has a default in DefaultConfig.
func (c *Config) FillDefaults() {
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultConfig.OutputFormat
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultConfig.Log.Level
	}
	if c.Log.OutputPaths == "" {
		c.Log.OutputPaths = DefaultConfig.Log.OutputPaths
	}
	if c.Log.ErrorOutputPaths == "" {
		c.Log.ErrorOutputPaths = DefaultConfig.Log.ErrorOutputPaths
	}
	if c.Retry.Attempts == 0 {
		c.Retry.Attempts = DefaultConfig.Retry.Attempts
	}
	if c.Retry.DelayMillis == 0 {
		c.Retry.DelayMillis = DefaultConfig.Retry.DelayMillis
	}
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

// Validate checks the field constraints of c, reporting every failed field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "failed to validate config")
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, fmt.Sprintf("field '%s' failed validation, condition: %s", fieldError.Namespace(), fieldError.Tag()))
	}
	return errors.Wrap(ErrInvalidConfig, strings.Join(fields, "; "))
}

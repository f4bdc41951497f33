// Package config holds configuration for the guide service.
package config

import (
	"time"

	"github.com/threerivers/guide/internal/configloader"
)

// Default configuration values.
const (
	defaultServiceName     = "guide"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8090
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultLLMBaseURL      = "https://api.openai.com/v1"
	defaultLLMModel        = "gpt-4o-mini"
	defaultLLMTimeoutSec   = 8
	defaultLLMMaxHistory   = 3
	defaultLLMRequestsPerS = 5
)

// Config holds all configuration for the guide service.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Logging LoggingConfig `yaml:"logging"`
	LLM     LLMConfig     `yaml:"llm"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"GUIDE_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"  yaml:"debug"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// LLMConfig holds configuration for the optional answer enhancer.
// The enhancer is active only when APIKey is non-empty; without it the
// service runs rule-based only, which is a fully supported mode.
type LLMConfig struct {
	APIKey            string        `env:"GUIDE_LLM_API_KEY"  yaml:"api_key"`
	BaseURL           string        `env:"GUIDE_LLM_BASE_URL" yaml:"base_url"`
	Model             string        `env:"GUIDE_LLM_MODEL"    yaml:"model"`
	Timeout           time.Duration `yaml:"timeout"`
	MaxHistory        int           `yaml:"max_history"`
	RequestsPerSecond int           `yaml:"requests_per_second"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return configloader.LoadWithDefaults[Config](path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
	setLLMDefaults(&cfg.LLM)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setLLMDefaults(l *LLMConfig) {
	if l.BaseURL == "" {
		l.BaseURL = defaultLLMBaseURL
	}
	if l.Model == "" {
		l.Model = defaultLLMModel
	}
	if l.Timeout == 0 {
		l.Timeout = defaultLLMTimeoutSec * time.Second
	}
	if l.MaxHistory == 0 {
		l.MaxHistory = defaultLLMMaxHistory
	}
	if l.RequestsPerSecond == 0 {
		l.RequestsPerSecond = defaultLLMRequestsPerS
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vietcgi/kubernetes-platform-stack/pkg/version"
)

type web struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Config stores application configuration. It is populated once at process
// start and never mutated afterwards; handlers receive it by reference.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	Port        int
	LogLevel    string
	Web         web
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// GetConfig reads configuration from environment variables, applying
// defaults for anything unset. A PORT value that does not parse as an
// integer is a startup error rather than a silent fallback.
func GetConfig() (*Config, error) {
	config := newConfig()

	if val, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", val, err)
		}
		config.Port = port
	}

	if val, ok := os.LookupEnv("LOG_LEVEL"); ok {
		config.LogLevel = val
	}

	if val, ok := os.LookupEnv("ENVIRONMENT"); ok {
		config.Environment = val
	}

	return config, nil
}

// Create a new config with defaults
func newConfig() *Config {
	return &Config{
		AppName:     version.AppName,
		AppVersion:  version.Version,
		Environment: "unknown",
		Port:        8080,
		LogLevel:    "INFO",
		Web: web{
			ReadTimeout:     time.Second * 5,
			WriteTimeout:    time.Second * 5,
			ShutdownTimeout: time.Second * 5,
		},
	}
}

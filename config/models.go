package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig marks configuration that cannot be used to start the service.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	YouTrack YouTrackConfig `mapstructure:"youtrack"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.YouTrack.Token == "" {
		return fmt.Errorf("%w: youtrack token (YOUTRACK_API_TOKEN or YOUTRACK_TOKEN) is required", ErrInvalidConfig)
	}
	if c.YouTrack.Host == "" {
		return fmt.Errorf("%w: youtrack host (YOUTRACK_API_URL, YOUTRACK_BASE_URL or YOUTRACK_HOST) is required", ErrInvalidConfig)
	}
	if c.Server.Port == 0 {
		return fmt.Errorf("%w: server.port is required", ErrInvalidConfig)
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// YouTrackConfig describes how to reach the issue tracker.
type YouTrackConfig struct {
	Host    string        `mapstructure:"host"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

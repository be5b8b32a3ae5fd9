// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultEnvFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	loadEnvFile(envFilePath())

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.YouTrack.Token = strings.TrimSpace(cfg.YouTrack.Token)
	cfg.YouTrack.Host = strings.TrimSpace(cfg.YouTrack.Host)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func envFilePath() string {
	if p := os.Getenv("ENV_FILE_PATH"); p != "" {
		return p
	}
	return defaultEnvFile
}

// loadEnvFile copies values from a dotenv file into the process environment
// without overriding variables that are already set.
func loadEnvFile(path string) {
	envMap, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for k, val := range envMap {
		if _, exists := os.LookupEnv(k); !exists {
			_ = os.Setenv(k, val)
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 60*time.Second)

	v.SetDefault("youtrack.timeout", 30*time.Second)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"youtrack.timeout",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// First non-empty variable wins.
	_ = v.BindEnv("youtrack.token", "YOUTRACK_API_TOKEN", "YOUTRACK_TOKEN")
	_ = v.BindEnv("youtrack.host", "YOUTRACK_API_URL", "YOUTRACK_BASE_URL", "YOUTRACK_HOST")
}

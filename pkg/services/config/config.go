package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type UploadConfig struct {
	MaxSizeBytes int64 `mapstructure:"max_size_bytes"`
}

type ResultsConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type DisplayConfig struct {
	Currency string `mapstructure:"currency"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Results ResultsConfig `mapstructure:"results"`
	Display DisplayConfig `mapstructure:"display"`
}

// Load reads the application config from the given YAML file. Environment
// variables prefixed FORECAST_ATLAS override file values. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("upload.max_size_bytes", 10<<20)
	v.SetDefault("results.ttl", 15*time.Minute)
	v.SetDefault("display.currency", "USD")

	v.SetEnvPrefix("FORECAST_ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

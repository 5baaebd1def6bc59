package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL      string        `mapstructure:"api_base_url"`
	StaticBaseURL   string        `mapstructure:"static_base_url"`
	CredentialsPath string        `mapstructure:"credentials_path"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
}

// Load reads the connector config from the specified file path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("api_base_url", "https://api.columbo.io")
	v.SetDefault("static_base_url", "https://static.columbo.io")
	v.SetDefault("http_timeout", 30*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse connector config: %w", err)
	}

	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("credentials_path is required")
	}
	return &cfg, nil
}

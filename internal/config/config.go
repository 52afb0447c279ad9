package config

import "github.com/caarlos0/env/v10"

// Config centralizes the service configuration.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ShareTokenSecret   string `env:"SHARE_TOKEN_SECRET"`
	ShareTokenTTLHours int    `env:"SHARE_TOKEN_TTL_HOURS" envDefault:"720"`

	AnalysisRateWindowMinutes int `env:"ANALYSIS_RATE_WINDOW_MINUTES" envDefault:"10"`
	AnalysisRateMax           int `env:"ANALYSIS_RATE_MAX" envDefault:"20"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

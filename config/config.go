package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Weather     WeatherConfig     `yaml:"weather"`
	Currency    CurrencyConfig    `yaml:"currency"`
	Translation TranslationConfig `yaml:"translation"`
	Providers   ProviderConfig    `yaml:"providers"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"3000"`
}

type WeatherConfig struct {
	APIKey  string `yaml:"api_key" env:"WEATHER_API_KEY"`
	BaseURL string `yaml:"base_url" env:"WEATHER_BASE_URL" env-default:"https://api.weatherapi.com/v1"`
}

type CurrencyConfig struct {
	APIKey  string `yaml:"api_key" env:"EXCHANGE_API_KEY"`
	BaseURL string `yaml:"base_url" env:"EXCHANGE_BASE_URL" env-default:"https://api.exchangerate.host"`
}

type TranslationConfig struct {
	APIKey  string `yaml:"api_key" env:"TRANSLATE_API_KEY"`
	BaseURL string `yaml:"base_url" env:"TRANSLATE_BASE_URL" env-default:"https://translation.googleapis.com/language/translate/v2"`
}

// ProviderConfig holds settings shared by all outbound provider clients
type ProviderConfig struct {
	// Timeout bounds each individual provider call within an aggregation
	Timeout time.Duration `yaml:"timeout" env:"PROVIDER_TIMEOUT" env-default:"10s"`
	// RPS/Burst feed the rate limiter wrapped around live clients
	RPS   float64 `yaml:"rps" env:"PROVIDER_RPS" env-default:"5"`
	Burst int     `yaml:"burst" env:"PROVIDER_BURST" env-default:"10"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}

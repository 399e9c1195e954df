package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config configures the trainy-proxy process.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Weather WeatherConfig `yaml:"weather"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type WeatherConfig struct {
	ProviderURL string `yaml:"provider_url"`
	APIKey      string `yaml:"api_key"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8787},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix TRAINY_:
//
//	TRAINY_SERVER_HOST, TRAINY_SERVER_PORT,
//	TRAINY_WEATHER_PROVIDER_URL, TRAINY_WEATHER_API_KEY
//
// A missing file is not an error; defaults plus env apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRAINY_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("TRAINY_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("TRAINY_WEATHER_PROVIDER_URL"); v != "" {
		cfg.Weather.ProviderURL = v
	}
	if v := os.Getenv("TRAINY_WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

// Package config loads the application configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

type Config struct {
	Env        string `yaml:"env"`
	BaseURL    string `yaml:"base_url"`
	HTTPServer `yaml:"http_server"`
}

type HTTPServer struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
	CertFile       string        `yaml:"cert_file"`
	KeyFile        string        `yaml:"key_file"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Load reads the config file at path, falling back to pure defaults when
// path is empty. A .env file in the working directory is loaded first, so
// PORT and BASE_URL overrides can live there as well as in the environment.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: failed to load .env file: %w", op, err)
	}

	var cfg Config
	setDefaults(&cfg)

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.BaseURL = "http://localhost:8080"
	cfg.HTTPServer = defaultHTTPServer
}

func applyEnvOverrides(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", port, err)
		}
		cfg.HTTPServer.Port = p
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return nil
}

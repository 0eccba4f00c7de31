package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nkarpenko/cargohold/internal/storage"
)

const (
	defaultPort           = "8080"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Port                 string
	Container            storage.ContainerSpec
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Port                 string        `yaml:"port"`
	Container            yamlContainer `yaml:"container"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging bool          `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit `yaml:"rate_limit"`
}

// yamlContainer represents the container section in YAML.
type yamlContainer struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	Port           *string
	ContainerStr   *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	applyEnvConfig(&cfg)

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Port:                 defaultPort,
		Container:            storage.DefaultContainerSpec(),
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Port != "" {
		cfg.Port = yamlCfg.Port
	}

	if yamlCfg.Container.Length > 0 && yamlCfg.Container.Width > 0 && yamlCfg.Container.Height > 0 {
		cfg.Container = storage.ContainerSpec{
			Length: yamlCfg.Container.Length,
			Width:  yamlCfg.Container.Width,
			Height: yamlCfg.Container.Height,
		}
	}

	if yamlCfg.ShutdownGracePeriod != "" {
		if d, err := time.ParseDuration(yamlCfg.ShutdownGracePeriod); err == nil {
			cfg.ShutdownGracePeriod = d
		}
	}

	if yamlCfg.ReadHeaderTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.ReadHeaderTimeout); err == nil {
			cfg.ReadHeaderTimeout = d
		}
	}

	if yamlCfg.WriteTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.WriteTimeout); err == nil {
			cfg.WriteTimeout = d
		}
	}

	if yamlCfg.IdleTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.IdleTimeout); err == nil {
			cfg.IdleTimeout = d
		}
	}

	cfg.EnableRequestLogging = yamlCfg.EnableRequestLogging

	if yamlCfg.RateLimit.RPS >= 0 {
		cfg.RateLimitRPS = yamlCfg.RateLimit.RPS
	}

	if yamlCfg.RateLimit.Burst >= 0 {
		cfg.RateLimitBurst = yamlCfg.RateLimit.Burst
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}

	if rawDims := strings.TrimSpace(os.Getenv("CONTAINER_DIMS")); rawDims != "" {
		if spec, err := parseContainerSpec(rawDims); err == nil {
			cfg.Container = spec
		}
	}

	if rps := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.RateLimitBurst = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.Port != nil && *overrides.Port != "" {
		cfg.Port = *overrides.Port
	}

	if overrides.ContainerStr != nil && *overrides.ContainerStr != "" {
		spec, err := parseContainerSpec(*overrides.ContainerStr)
		if err != nil {
			return fmt.Errorf("parse container dimensions: %w", err)
		}
		cfg.Container = spec
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be >= 0")
	}
	if cfg.Container.Length <= 0 || cfg.Container.Width <= 0 || cfg.Container.Height <= 0 {
		return fmt.Errorf("container dimensions must be positive")
	}
	return nil
}

// parseContainerSpec parses an "LxWxH" string (also accepting '×' and '*'
// separators) into a container spec. All three values must be positive.
func parseContainerSpec(raw string) (storage.ContainerSpec, error) {
	normalized := strings.NewReplacer("×", "x", "*", "x", "X", "x").Replace(raw)
	parts := strings.Split(normalized, "x")
	if len(parts) != 3 {
		return storage.ContainerSpec{}, fmt.Errorf("expected LxWxH, got %q", raw)
	}

	values := make([]float64, 3)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return storage.ContainerSpec{}, fmt.Errorf("invalid dimension %q", part)
		}
		if value <= 0 {
			return storage.ContainerSpec{}, fmt.Errorf("dimension must be positive, got %g", value)
		}
		values[i] = value
	}

	return storage.ContainerSpec{Length: values[0], Width: values[1], Height: values[2]}, nil
}

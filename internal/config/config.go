package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"amareke/internal/model"
)

// EnvPrefix namespaces every environment override, e.g. AMAREKE_STUDIO_TONE.
const EnvPrefix = "AMAREKE_"

// Config is the application's configuration model.
// It captures studio defaults, the random seed, and the metrics endpoint.
type Config struct {
	Studio  StudioConfig  `yaml:"studio" envPrefix:"STUDIO_"`
	Random  RandomConfig  `yaml:"random" envPrefix:"RANDOM_"`
	Metrics MetricsConfig `yaml:"metrics" envPrefix:"METRICS_"`
}

// StudioConfig holds the inputs used when a command leaves them unset.
type StudioConfig struct {
	Platform  string `yaml:"platform" env:"PLATFORM"`
	Tone      string `yaml:"tone" env:"TONE"`
	Topic     string `yaml:"topic" env:"TOPIC"`
	ValueProp string `yaml:"valueProp" env:"VALUE_PROP"`
	CTA       string `yaml:"cta" env:"CTA"`
	// Minimum gap between generated captions; 0 disables pacing.
	PacingMS int `yaml:"pacingMs" env:"PACING_MS"`
}

type RandomConfig struct {
	// 0 picks a fresh seed per process.
	Seed int64 `yaml:"seed" env:"SEED"`
}

type MetricsConfig struct {
	// Empty disables the metrics server.
	Addr string `yaml:"addr" env:"ADDR"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Studio: StudioConfig{
			Platform:  model.Instagram.String(),
			Tone:      model.Bold.String(),
			Topic:     "Creator distribution infrastructure",
			ValueProp: "Plan, publish, distribute, and measure content with measurable growth.",
			CTA:       "Try the live demo",
			PacingMS:  350,
		},
		Random:  RandomConfig{Seed: 0},
		Metrics: MetricsConfig{Addr: ""},
	}
}

// ResolveEnv overrides config fields from AMAREKE_* environment variables.
func (c *Config) ResolveEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the studio defaults name a known platform and tone.
func (c Config) Validate() error {
	if _, err := model.ParsePlatform(c.Studio.Platform); err != nil {
		return fmt.Errorf("studio.platform: %w", err)
	}
	if _, err := model.ParseTone(c.Studio.Tone); err != nil {
		return fmt.Errorf("studio.tone: %w", err)
	}
	if c.Studio.PacingMS < 0 {
		return errors.New("studio.pacingMs must not be negative")
	}
	return nil
}

// Load reads YAML config from path on top of the defaults, then applies env overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.ResolveEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadOrDefault is Load, falling back to Default (plus env) when path does not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		if err := cfg.ResolveEnv(); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}
	return cfg, err
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

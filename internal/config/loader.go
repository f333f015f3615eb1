package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, after loading a .env file if one exists and
// expanding ${VAR} environment references in the YAML.
func Load(path string) (*TraderConfig, error) {
	// Silently skipped when there is no .env file.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg TraderConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	applyEnvCredentials(&cfg)
	return &cfg, nil
}

// LoadWithDefaults loads config and applies default values.
func LoadWithDefaults(path string) (*TraderConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*TraderConfig, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// applyEnvCredentials fills empty credential fields from the environment.
// Inline PEM material lives outside the YAML because multi-line expansion
// would break the document.
func applyEnvCredentials(cfg *TraderConfig) {
	if cfg.API.KeyID == "" {
		cfg.API.KeyID = os.Getenv(EnvKeyID)
	}
	if cfg.API.PrivateKeyPEM == "" {
		cfg.API.PrivateKeyPEM = os.Getenv(EnvPrivateKeyPEM)
	}
	if cfg.API.PrivateKeyPath == "" {
		cfg.API.PrivateKeyPath = os.Getenv(EnvPrivateKeyPath)
	}
}

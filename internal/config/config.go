// Package config loads server settings from an optional YAML file plus
// environment overrides. Environment wins over file, file wins over
// defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

type AIConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	TimeoutSec  int     `yaml:"timeout_seconds"`
	Retries     int     `yaml:"retries"`
}

type ExtractionConfig struct {
	StrategyTimeoutSec int     `yaml:"strategy_timeout_seconds"`
	MinLength          int     `yaml:"min_length"`
	MinAlphaRatio      float64 `yaml:"min_alpha_ratio"`
}

type Config struct {
	Port         string           `yaml:"port"`
	PromptBudget int              `yaml:"prompt_budget"`
	AI           AIConfig         `yaml:"ai"`
	Extraction   ExtractionConfig `yaml:"extraction"`

	// APIKey never comes from the YAML file; credentials are injected via
	// environment only.
	APIKey string `yaml:"-"`
}

// Load builds the config. If CONFIG_FILE is set, that YAML file is read
// first; environment variables then override individual fields.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         "3000",
		PromptBudget: 6000,
		AI: AIConfig{
			Model:       "llama-3.1-70b-versatile",
			MaxTokens:   2048,
			Temperature: 0,
			TimeoutSec:  30,
			Retries:     2,
		},
		Extraction: ExtractionConfig{
			StrategyTimeoutSec: 30,
			MinLength:          50,
			MinAlphaRatio:      0.30,
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("AI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := os.Getenv("AI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AI.MaxTokens = n
		}
	}
	if v := os.Getenv("AI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.AI.Temperature = f
		}
	}
	if v := os.Getenv("AI_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AI.Retries = n
		}
	}
	if v := os.Getenv("PROMPT_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PromptBudget = n
		}
	}

	return cfg, nil
}

func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSec) * time.Second
}

func (c *Config) StrategyTimeout() time.Duration {
	return time.Duration(c.Extraction.StrategyTimeoutSec) * time.Second
}

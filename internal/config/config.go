// Package config loads webforge configuration.
// Configuration source priority (highest to lowest):
// 1. Environment variables (GITHUB_TOKEN, OPENAI_API_KEY, ANTHROPIC_API_KEY, LLM_* overrides)
// 2. Config file path specified via --config flag
// 3. ~/.config/webforge/config.yaml
// A .env file in the working directory is loaded before overrides are read.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ProviderConfig holds configuration for a single provider.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// TokenConfig tunes the token-budget layer.
type TokenConfig struct {
	// Limits overrides per-model safe token limits.
	Limits map[string]int `yaml:"limits"`

	// DefaultLimit applies to models absent from Limits. 0 keeps the
	// built-in default.
	DefaultLimit int `yaml:"default_limit"`

	// ContextRatio and ResponseRatio split the safe limit into context and
	// response budgets. 0 keeps the built-in defaults (0.5 and 0.3).
	ContextRatio  float64 `yaml:"context_ratio"`
	ResponseRatio float64 `yaml:"response_ratio"`
}

// CostPricingEntry is a user-defined pricing override for a model.
type CostPricingEntry struct {
	InputPerMillion  float64 `yaml:"input_per_million"`
	OutputPerMillion float64 `yaml:"output_per_million"`
}

// Config is the complete configuration structure for webforge.
type Config struct {
	// Provider is the active provider name ("github", "openai", "anthropic", "deepseek").
	Provider string `yaml:"provider"`

	// Model overrides the provider's default model for every task.
	Model string `yaml:"model"`

	// Providers holds per-provider configuration.
	Providers map[string]*ProviderConfig `yaml:"providers"`

	// AgentModels maps persona keys (e.g. "qa_engineer") to model overrides.
	AgentModels map[string]string `yaml:"agent_models"`

	// Token tunes budgets and truncation.
	Token TokenConfig `yaml:"token"`

	// CostPricing holds user-defined pricing overrides for cost tracking.
	CostPricing map[string]CostPricingEntry `yaml:"cost_pricing"`

	// OutputDir is where generated projects are written. Default "./projects".
	OutputDir string `yaml:"output_dir"`

	// HistoryDB overrides the run-history database path.
	HistoryDB string `yaml:"history_db"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:  "github",
		Providers: make(map[string]*ProviderConfig),
		OutputDir: "./projects",
	}
}

// Load reads the .env file (if present), the config file, and environment
// variable overrides, in that order.
func Load(configPath string) (*Config, error) {
	// Missing .env is the common case and not an error.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(home, ".config", "webforge", "config.yaml")
		}
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Providers == nil {
		cfg.Providers = make(map[string]*ProviderConfig)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./projects"
	}

	return cfg, nil
}

// GetProviderConfig returns the config for the named provider, or an empty
// config if not found.
func (c *Config) GetProviderConfig(name string) *ProviderConfig {
	if pc, ok := c.Providers[name]; ok {
		return pc
	}
	return &ProviderConfig{}
}

// APIKey resolves the key for the active provider.
func (c *Config) APIKey() string {
	return c.GetProviderConfig(c.Provider).APIKey
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	setProviderKey := func(name, key string) {
		if cfg.Providers == nil {
			cfg.Providers = make(map[string]*ProviderConfig)
		}
		if cfg.Providers[name] == nil {
			cfg.Providers[name] = &ProviderConfig{}
		}
		cfg.Providers[name].APIKey = key
	}

	// Provider-specific keys
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		setProviderKey("github", v)
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		setProviderKey("openai", v)
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		setProviderKey("anthropic", v)
	}

	// Generic overrides apply to the active provider.
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		setProviderKey(cfg.Provider, v)
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		if cfg.Providers[cfg.Provider] == nil {
			setProviderKey(cfg.Provider, "")
		}
		cfg.Providers[cfg.Provider].BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.Model = v
	}

	// Tool selection
	if v := os.Getenv("WEBFORGE_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("WEBFORGE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("WEBFORGE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
}

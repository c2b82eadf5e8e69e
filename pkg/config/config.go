package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for seedstage-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values. Secrets (API keys) must
// only come from environment variables.
type Config struct {
	Env string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`

	// StorePath is the location of the local key-value store file.
	StorePath string `yaml:"store_path" env:"STORE_PATH" env-default:"seedstage.db"`

	// SeedDemoData controls whether demo fixture accounts are seeded on startup.
	SeedDemoData bool `yaml:"seed_demo_data" env:"SEED_DEMO_DATA" env-default:"false"`

	AI       AIConfig       `yaml:"ai"`
	Matching MatchingConfig `yaml:"matching"`
}

// AIConfig holds the endpoints for the external review/scoring calls.
// Exactly one provider is used; "heuristic" runs fully local and
// deterministic, with no network dependency.
type AIConfig struct {
	// Provider selects the AI backend: 'openai', 'anthropic' or 'heuristic'.
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:"heuristic"`

	// Endpoint is the base URL for OpenAI-compatible providers.
	Endpoint string `yaml:"endpoint" env:"AI_ENDPOINT" env-default:"https://api.openai.com/v1"`

	// Model is the model name for the selected provider.
	Model string `yaml:"model" env:"AI_MODEL" env-default:""`

	// APIKey authenticates against the provider. Secret - not in YAML.
	APIKey string `yaml:"-" env:"AI_API_KEY"`

	// CallTimeoutSeconds bounds each external call. A timeout is treated as
	// a retryable failure and leaves engine state untouched.
	CallTimeoutSeconds int `yaml:"call_timeout_seconds" env:"AI_CALL_TIMEOUT_SECONDS" env-default:"30"`
}

// CallTimeout returns the per-call deadline as a duration.
func (c *AIConfig) CallTimeout() time.Duration {
	return time.Duration(c.CallTimeoutSeconds) * time.Second
}

// Provider constants.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderHeuristic = "heuristic"
)

// MatchingConfig holds the aggregate weights for the partner matcher.
// Weights are normalized at use, so they only need to be non-negative with
// a positive sum; defaults sum to 1.
type MatchingConfig struct {
	RoleWeight       float64 `yaml:"role_weight" env:"MATCH_ROLE_WEIGHT" env-default:"0.35"`
	ExperienceWeight float64 `yaml:"experience_weight" env:"MATCH_EXPERIENCE_WEIGHT" env-default:"0.25"`
	IndustryWeight   float64 `yaml:"industry_weight" env:"MATCH_INDUSTRY_WEIGHT" env-default:"0.25"`
	StyleWeight      float64 `yaml:"style_weight" env:"MATCH_STYLE_WEIGHT" env-default:"0.15"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When no config.yaml exists, environment variables and defaults
// alone apply.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case ProviderOpenAI, ProviderAnthropic:
		if c.AI.Model == "" {
			return fmt.Errorf("AI_MODEL is required for provider %q", c.AI.Provider)
		}
	case ProviderHeuristic:
	default:
		return fmt.Errorf("unknown AI provider %q", c.AI.Provider)
	}

	m := c.Matching
	if m.RoleWeight < 0 || m.ExperienceWeight < 0 || m.IndustryWeight < 0 || m.StyleWeight < 0 {
		return fmt.Errorf("matching weights must be non-negative")
	}
	if m.RoleWeight+m.ExperienceWeight+m.IndustryWeight+m.StyleWeight <= 0 {
		return fmt.Errorf("matching weights must have a positive sum")
	}

	return nil
}

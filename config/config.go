// Package config loads application configuration from an optional YAML
// file plus environment variables, with a best-effort .env file for local
// development. API keys never live in the YAML file; they come from the
// environment only.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the tunables for assembling an agent plus the provider
// credentials read from the environment.
type Config struct {
	// Provider selects the model adapter: openai, anthropic or googleai.
	Provider string `yaml:"provider"`
	// Model is the provider-specific model identifier.
	Model string `yaml:"model"`

	// Temperature for open conversation and synthesis calls.
	Temperature float64 `yaml:"temperature"`
	// ToolTemperature for structured tool-call generation.
	ToolTemperature float64 `yaml:"tool_temperature"`
	// RouterTemperature for the stage-1 classification call.
	RouterTemperature float64 `yaml:"router_temperature"`

	// MaxTurns bounds conversation memory.
	MaxTurns int `yaml:"max_turns"`
	// MaxToolResults bounds the tool result log.
	MaxToolResults int `yaml:"max_tool_results"`

	// Credentials, environment only.
	OpenAIAPIKey    string `yaml:"-"`
	AnthropicAPIKey string `yaml:"-"`
	GeminiAPIKey    string `yaml:"-"`
	NewsAPIKey      string `yaml:"-"`
}

// Default returns the baseline configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Provider:          "openai",
		Model:             "gpt-4o-mini",
		Temperature:       0.7,
		ToolTemperature:   0.2,
		RouterTemperature: 0.1,
		MaxTurns:          20,
		MaxToolResults:    10,
	}
}

// Load reads configuration. A missing YAML file is not an error — defaults
// plus environment variables apply; a present but malformed file is.
func Load(path string) (*Config, error) {
	// Best effort: local development keeps keys in .env, deployments set
	// real environment variables.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
			}
		}
	}

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")

	return cfg, nil
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the process configuration, loaded from the environment with an
// optional .env file.
type Config struct {
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// LLMProvider selects the inference backend: "gemini" or "openai".
	LLMProvider string `mapstructure:"LLM_PROVIDER"`

	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`
	GeminiTextModel       string `mapstructure:"GEMINI_TEXT_MODEL"`
	GeminiMultimodalModel string `mapstructure:"GEMINI_MULTIMODAL_MODEL"`
	GeminiSearchModel     string `mapstructure:"GEMINI_SEARCH_MODEL"`

	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIChatModel   string `mapstructure:"OPENAI_MODEL_CHAT"`
	OpenAIVisionModel string `mapstructure:"OPENAI_MODEL_VISION"`
}

// Load reads configuration from the environment, applying defaults for
// everything except API keys.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LLM_PROVIDER", "gemini")

	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LLM_PROVIDER",
		"GEMINI_API_KEY", "GEMINI_TEXT_MODEL", "GEMINI_MULTIMODAL_MODEL", "GEMINI_SEARCH_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL_CHAT", "OPENAI_MODEL_VISION",
	} {
		_ = v.BindEnv(key)
	}

	// A .env file is optional; env vars alone are fine.
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.LLMProvider {
	case "gemini", "openai":
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER %q (supported: gemini, openai)", cfg.LLMProvider)
	}
	return &cfg, nil
}

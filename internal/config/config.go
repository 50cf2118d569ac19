// Package config reads process configuration from the environment once at startup.
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"

	"lifecoach/pkg/llm"

	"github.com/joho/godotenv"
)

const (
	envKeyProvider        = "LLM_PROVIDER"
	envKeyAnthropicAPIKey = "ANTHROPIC_API_KEY"
	envKeyAnthropicModel  = "ANTHROPIC_MODEL"
	envKeyOpenAIAPIKey    = "OPENAI_API_KEY"
	envKeyOpenAIModel     = "OPENAI_MODEL"
	envKeyCompatibleURL   = "LLM_BASE_URL"
	envKeyCompatibleKey   = "LLM_API_KEY"
	envKeyCompatibleModel = "LLM_MODEL"
	envKeyPort            = "PORT"
	envKeyFrontendURL     = "FRONTEND_URL"
)

const DefaultFrontendOrigin = "http://localhost:3000"

type Config struct {
	Provider llm.Provider

	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIModel     string

	CompatibleBaseURL string
	CompatibleAPIKey  string
	CompatibleModel   string

	Port        string
	FrontendURL string
}

// Load reads .env (if any) and the environment. It fails only on an unknown provider;
// credentials are checked by NewLLMClient.
func Load() (Config, error) {
	godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	provider, err := llm.ParseProvider(os.Getenv(envKeyProvider))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Provider:          provider,
		AnthropicAPIKey:   os.Getenv(envKeyAnthropicAPIKey),
		AnthropicModel:    envOr(envKeyAnthropicModel, llm.DefaultAnthropicModel),
		OpenAIAPIKey:      os.Getenv(envKeyOpenAIAPIKey),
		OpenAIModel:       envOr(envKeyOpenAIModel, llm.DefaultOpenAIModel),
		CompatibleBaseURL: os.Getenv(envKeyCompatibleURL),
		CompatibleAPIKey:  os.Getenv(envKeyCompatibleKey),
		CompatibleModel:   os.Getenv(envKeyCompatibleModel),
		Port:              envOr(envKeyPort, "8000"),
		FrontendURL:       os.Getenv(envKeyFrontendURL),
	}, nil
}

// LLMOptions returns the options for the configured provider only.
func (c Config) LLMOptions() llm.Options {
	switch c.Provider {
	case llm.ProviderOpenAI:
		return llm.Options{APIKey: c.OpenAIAPIKey, Model: c.OpenAIModel}
	case llm.ProviderCompatible:
		return llm.Options{APIKey: c.CompatibleAPIKey, Model: c.CompatibleModel, BaseURL: c.CompatibleBaseURL}
	default:
		return llm.Options{APIKey: c.AnthropicAPIKey, Model: c.AnthropicModel}
	}
}

// NewLLMClient builds the process-wide client. Missing credentials fail here.
func (c Config) NewLLMClient() (llm.Client, error) {
	client, err := llm.New(c.Provider, c.LLMOptions())
	if err != nil {
		return nil, fmt.Errorf("configure %s client: %w", c.Provider, err)
	}
	return client, nil
}

func (c Config) AllowedOrigins() []string {
	origins := []string{DefaultFrontendOrigin}
	if c.FrontendURL != "" && c.FrontendURL != DefaultFrontendOrigin {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

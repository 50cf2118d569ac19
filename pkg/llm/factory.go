package llm

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderAnthropic  Provider = "anthropic"
	ProviderOpenAI     Provider = "openai"
	ProviderCompatible Provider = "compatible"
)

// Options configures a single provider. BaseURL is only used by the compatible provider.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
}

func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case "", "claude", ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderOpenAI, ProviderCompatible:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported LLM provider: %s (supported: anthropic, openai, compatible)", s)
	}
}

// New builds the client for provider. A missing credential is an error here so that
// it surfaces at startup rather than on the first request.
func New(provider Provider, opts Options) (Client, error) {
	switch provider {
	case ProviderAnthropic:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		return NewAnthropicClient(opts.APIKey, opts.Model), nil

	case ProviderOpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		return NewOpenAIClient(opts.APIKey, opts.Model), nil

	case ProviderCompatible:
		if opts.BaseURL == "" {
			return nil, fmt.Errorf("LLM_BASE_URL environment variable not set")
		}
		if opts.Model == "" {
			return nil, fmt.Errorf("LLM_MODEL environment variable not set")
		}
		return NewCompatibleClient(opts.APIKey, opts.BaseURL, opts.Model), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

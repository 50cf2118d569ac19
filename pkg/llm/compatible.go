package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

// CompatibleClient talks to any OpenAI-compatible endpoint (DeepSeek, Ollama, vLLM)
// selected by base URL.
type CompatibleClient struct {
	client    *goopenai.Client
	modelName string
	baseURL   string
}

func NewCompatibleClient(apiKey, baseURL, model string) *CompatibleClient {
	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &CompatibleClient{
		client:    goopenai.NewClientWithConfig(config),
		modelName: model,
		baseURL:   config.BaseURL,
	}
}

func (c *CompatibleClient) Name() string {
	return "compatible"
}

func (c *CompatibleClient) Model() string {
	return c.modelName
}

func (c *CompatibleClient) Generate(ctx context.Context, req Request) (*Response, error) {
	schema, err := json.Marshal(req.Contract.Schema)
	if err != nil {
		return nil, fmt.Errorf("marshal output contract: %w", err)
	}

	slog.Info("calling compatible endpoint with structured output", "base_url", c.baseURL, "model", c.modelName, "contract", req.Contract.Name)

	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:     c.modelName,
		MaxTokens: int(maxTokens(req)),
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: req.System},
			{Role: goopenai.ChatMessageRoleUser, Content: req.User},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &goopenai.ChatCompletionResponseFormatJSONSchema{
				Name:        req.Contract.Name,
				Description: req.Contract.Description,
				Schema:      json.RawMessage(schema),
				Strict:      true,
			},
		},
	})

	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &ServiceError{Provider: c.Name(), Err: errors.New("no response from compatible endpoint")}
	}

	choice := resp.Choices[0]
	content := strings.TrimSpace(choice.Message.Content)

	slog.Info("compatible response", "finish_reason", choice.FinishReason, "payload", truncate(content, maxLoggedPayload))

	return &Response{
		Text:       content,
		StopReason: string(choice.FinishReason),
		Model:      resp.Model,
	}, nil
}

package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultOpenAIModel = "gpt-4o-mini"

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if model == "" {
		model = DefaultOpenAIModel
	}

	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
	}
}

func (c *OpenAIClient) Name() string {
	return "openai"
}

func (c *OpenAIClient) Model() string {
	return c.modelName
}

func (c *OpenAIClient) Generate(ctx context.Context, req Request) (*Response, error) {
	slog.Info("calling openai with structured output", "model", c.modelName, "contract", req.Contract.Name)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               c.model,
		MaxCompletionTokens: openai.Int(maxTokens(req)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        req.Contract.Name,
					Description: openai.String(req.Contract.Description),
					Schema:      req.Contract.Schema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})

	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &ServiceError{Provider: c.Name(), Err: errors.New("no response from openai")}
	}

	choice := resp.Choices[0]
	content := strings.TrimSpace(choice.Message.Content)

	slog.Info("openai response", "finish_reason", choice.FinishReason, "payload", truncate(content, maxLoggedPayload))

	return &Response{
		Text:       content,
		StopReason: choice.FinishReason,
		Model:      resp.Model,
	}, nil
}

package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultAnthropicModel = "claude-sonnet-4-5"

// AnthropicClient declares the output contract as a single tool and forces the model
// to call it, so the tool input is the structured payload.
type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey, model string, opts ...option.RequestOption) *AnthropicClient {
	if model == "" {
		model = DefaultAnthropicModel
	}

	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.Model(model),
		modelName: model,
	}
}

func (c *AnthropicClient) Name() string {
	return "anthropic"
}

func (c *AnthropicClient) Model() string {
	return c.modelName
}

func (c *AnthropicClient) Generate(ctx context.Context, req Request) (*Response, error) {
	props, required := req.Contract.properties()

	slog.Info("calling anthropic with structured output", "model", c.modelName, "contract", req.Contract.Name)

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens(req),
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
		Tools: []anthropic.ToolUnionParam{
			{OfTool: &anthropic.ToolParam{
				Name:        req.Contract.Name,
				Description: anthropic.String(req.Contract.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: props,
					Required:   required,
					ExtraFields: map[string]any{
						"additionalProperties": false,
					},
				},
			}},
		},
		ToolChoice: anthropic.ToolChoiceParamOfTool(req.Contract.Name),
	})

	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Err: err}
	}

	if len(resp.Content) == 0 {
		return nil, &ServiceError{Provider: c.Name(), Err: errors.New("no response from anthropic")}
	}

	content, ok := toolPayload(resp.Content, req.Contract.Name)
	if !ok {
		content, ok = textPayload(resp.Content)
	}
	if !ok {
		return nil, &ServiceError{Provider: c.Name(), Err: errors.New("no structured payload from anthropic")}
	}

	slog.Info("anthropic response", "stop_reason", resp.StopReason, "payload", truncate(content, maxLoggedPayload))

	return &Response{
		Text:       content,
		StopReason: string(resp.StopReason),
		Model:      string(resp.Model),
	}, nil
}

func toolPayload(blocks []anthropic.ContentBlockUnion, tool string) (string, bool) {
	for _, block := range blocks {
		if block.Type == "tool_use" && block.Name == tool && len(block.Input) > 0 {
			return string(block.Input), true
		}
	}
	return "", false
}

// textPayload returns the first text block, trimmed only. Fenced or prose-wrapped answers are
// left for the caller to reject.
func textPayload(blocks []anthropic.ContentBlockUnion) (string, bool) {
	for _, block := range blocks {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), true
		}
	}
	return "", false
}

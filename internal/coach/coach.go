// Package coach turns free-text user input into structured problems and advice
// through a single structured-output call to an LLM.
package coach

import (
	"context"
	"fmt"

	"lifecoach/internal/model"
	"lifecoach/pkg/llm"
)

var problemsContract = llm.ArrayContract(
	"report_problems",
	"Report exactly three life problems identified from the user's situation.",
	problemsKey,
	map[string]any{
		"id":          map[string]any{"type": "integer"},
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
	},
)

var recommendationsContract = llm.ArrayContract(
	"report_recommendations",
	"Report one piece of actionable advice for each confirmed problem.",
	recommendationsKey,
	map[string]any{
		"problem_id": map[string]any{"type": "integer"},
		"advice":     map[string]any{"type": "string"},
	},
)

// Coach is stateless apart from the client and safe for concurrent use.
type Coach struct {
	client llm.Client
}

func New(client llm.Client) *Coach {
	return &Coach{client: client}
}

// Analyze returns exactly three problems or one of *ValidationError,
// *ResponseParseError or *llm.ServiceError.
func (c *Coach) Analyze(ctx context.Context, feeling, troubles, changes string) ([]model.Problem, error) {
	resp, err := c.client.Generate(ctx, llm.Request{
		System:    analyzeSystemPrompt,
		User:      renderAnalyzeMessage(feeling, troubles, changes),
		MaxTokens: llm.DefaultMaxTokens,
		Contract:  problemsContract,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze problems: %w", err)
	}

	return parseProblems(resp.Text)
}

// Recommend returns whatever advice list the model produced. An empty problem list
// is legal and the count is not matched against the input.
func (c *Coach) Recommend(ctx context.Context, problems []model.Problem) ([]model.Recommendation, error) {
	resp, err := c.client.Generate(ctx, llm.Request{
		System:    recommendSystemPrompt,
		User:      renderRecommendMessage(problems),
		MaxTokens: llm.DefaultMaxTokens,
		Contract:  recommendationsContract,
	})
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	return parseRecommendations(resp.Text)
}

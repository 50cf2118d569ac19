package llm

import (
	"context"
	"fmt"
)

const DefaultMaxTokens int64 = 1024

// OutputContract is the JSON shape the model is asked to produce.
type OutputContract struct {
	Name        string
	Description string
	Schema      map[string]any
}

type Request struct {
	System    string
	User      string
	MaxTokens int64
	Contract  OutputContract
}

// Response carries the raw payload. It is expected to be JSON but is not parsed here.
type Response struct {
	Text       string
	StopReason string
	Model      string
}

type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	Name() string
	Model() string
}

// ServiceError is any failure talking to the remote model: transport, auth, quota
// or an envelope without usable content.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func maxTokens(req Request) int64 {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return DefaultMaxTokens
}

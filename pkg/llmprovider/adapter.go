package llmprovider

import (
	"context"
	"time"

	"quicktask/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client  gemini.Client
	timeout time.Duration
}

// NewGeminiAdapter creates a new Gemini adapter. A zero timeout leaves the caller's deadline in charge.
func NewGeminiAdapter(client gemini.Client, timeout time.Duration) *GeminiAdapter {
	return &GeminiAdapter{client: client, timeout: timeout}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{Role: msg.Role, Text: msg.Text()}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

package gemini

import "context"

// Client generates text with one Gemini model. Safe for concurrent use.
type Client interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, filling defaults, and returns a Client for it.
func New(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}

package openaicompat

import "context"

// IClient talks to any chat-completions endpoint that follows the OpenAI
// wire format (Qwen/DashScope, DeepSeek, OpenAI).
// Implementations are safe for concurrent use.
type IClient interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the vendor name the client was configured with
	Name() string

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI-compatible client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}

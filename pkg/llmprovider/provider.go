package llmprovider

import "context"

// Provider is one model backend. The Manager is itself a Provider.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Name() string
	Model() string
}

// Request is a single-turn generation request in vendor-neutral form.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	// ToolChoice names the tool the model must call. Empty lets the model decide.
	ToolChoice  string
	Temperature float64
	MaxTokens   int
}

// Message is one conversation turn. Role is "user", "assistant" or "system".
type Message struct {
	Role  string
	Parts []Part
}

// Part is either text or a function call.
type Part struct {
	Text         string
	FunctionCall *FunctionCall
}

// Tool declares a callable function. Parameters is a JSON Schema object.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// FunctionCall is the model's structured answer.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// Response carries the model output and which backend produced it.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// TextMessage builds a single-part text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// FirstFunctionCall returns the first function call in the response content.
func (r *Response) FirstFunctionCall() (*FunctionCall, bool) {
	if r == nil {
		return nil, false
	}
	for _, p := range r.Content.Parts {
		if p.FunctionCall != nil {
			return p.FunctionCall, true
		}
	}
	return nil, false
}

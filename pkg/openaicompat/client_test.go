package openaicompat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		wantURL   string
		wantModel string
	}{
		{name: "qwen defaults", cfg: Config{Name: "qwen", APIKey: "k"}, wantURL: QwenBaseURL, wantModel: QwenModel},
		{name: "alibaba alias", cfg: Config{Name: "alibaba", APIKey: "k"}, wantURL: QwenBaseURL, wantModel: QwenModel},
		{name: "deepseek defaults", cfg: Config{Name: "deepseek", APIKey: "k"}, wantURL: DeepSeekBaseURL, wantModel: DeepSeekModel},
		{name: "explicit values kept", cfg: Config{Name: "openai", APIKey: "k", BaseURL: "http://x", Model: "m"}, wantURL: "http://x", wantModel: "m"},
		{name: "missing key", cfg: Config{Name: "qwen"}, wantErr: true},
		{name: "missing name", cfg: Config{APIKey: "k"}, wantErr: true},
		{name: "unknown vendor without url", cfg: Config{Name: "local", APIKey: "k", Model: "m"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.BaseURL != tt.wantURL {
				t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, tt.wantURL)
			}
			if cfg.Model != tt.wantModel {
				t.Errorf("Model = %q, want %q", cfg.Model, tt.wantModel)
			}
			if cfg.HTTPClient == nil {
				t.Error("HTTPClient should be defaulted")
			}
		})
	}
}

func TestGenerateContent_ToolChoice(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{
			"model": "qwen-plus",
			"choices": [{"message": {"role": "assistant", "tool_calls": [
				{"id": "c1", "type": "function", "function": {"name": "parse_task", "arguments": "{\"title\":\"Buy milk\",\"priority\":\"low\"}"}}
			]}}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 4, "total_tokens": 7}
		}`))
	}))
	defer srv.Close()

	client, err := New(Config{Name: "qwen", APIKey: "secret", BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "sys"}}},
		Messages:          []Content{{Role: "user", Parts: []Part{{Text: "buy milk"}}}},
		Tools:             []Tool{{Name: "parse_task", Parameters: map[string]interface{}{"type": "object"}}},
		ToolChoice:        "parse_task",
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	choice, ok := got["tool_choice"].(map[string]interface{})
	if !ok {
		t.Fatalf("tool_choice missing from request: %v", got)
	}
	fn, _ := choice["function"].(map[string]interface{})
	if choice["type"] != "function" || fn["name"] != "parse_task" {
		t.Errorf("tool_choice = %v", choice)
	}
	msgs, _ := got["messages"].([]interface{})
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	if first, _ := msgs[0].(map[string]interface{}); first["role"] != "system" {
		t.Errorf("first message role = %v", first["role"])
	}

	if len(resp.Content.Parts) != 1 {
		t.Fatalf("parts = %+v", resp.Content.Parts)
	}
	fc := resp.Content.Parts[0].FunctionCall
	if fc == nil || fc.Name != "parse_task" || fc.Args["title"] != "Buy milk" {
		t.Errorf("function call = %+v", fc)
	}
	if resp.Usage.TotalTokens != 7 || resp.Model != "qwen-plus" {
		t.Errorf("usage = %+v model = %q", resp.Usage, resp.Model)
	}
}

func TestGenerateContent_MalformedArgumentsLeaveArgsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "tool_calls": [
			{"type": "function", "function": {"name": "parse_task", "arguments": "not json"}}
		]}}]}`))
	}))
	defer srv.Close()

	client, _ := New(Config{Name: "deepseek", APIKey: "k", BaseURL: srv.URL})
	resp, err := client.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	fc := resp.Content.Parts[0].FunctionCall
	if fc == nil || fc.Args != nil {
		t.Errorf("expected nil args, got %+v", fc)
	}
	if resp.Model != DeepSeekModel {
		t.Errorf("Model = %q, want fallback %q", resp.Model, DeepSeekModel)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	client, _ := New(Config{Name: "openai", APIKey: "k", BaseURL: srv.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Provider != "openai" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

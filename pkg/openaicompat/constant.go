package openaicompat

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// QwenBaseURL is the DashScope OpenAI-compatible endpoint
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	// QwenModel is the default Qwen model
	QwenModel = "qwen-plus"

	// DeepSeekBaseURL is the DeepSeek API endpoint
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	// DeepSeekModel is the default DeepSeek model
	DeepSeekModel = "deepseek-chat"

	// OpenAIBaseURL is the OpenAI API endpoint
	OpenAIBaseURL = "https://api.openai.com/v1"
	// OpenAIModel is the default OpenAI model
	OpenAIModel = "gpt-4o-mini"
)

// defaults holds the endpoint and model used when the config leaves them empty.
var defaults = map[string]struct{ baseURL, model string }{
	"qwen":     {QwenBaseURL, QwenModel},
	"alibaba":  {QwenBaseURL, QwenModel},
	"deepseek": {DeepSeekBaseURL, DeepSeekModel},
	"openai":   {OpenAIBaseURL, OpenAIModel},
}

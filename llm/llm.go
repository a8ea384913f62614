package llm

import (
	"fmt"
	"net/http"

	"github.com/birmacher/ai-agent/common"
	"github.com/birmacher/ai-agent/logger"
)

const (
	ProviderGemini    = common.ProviderGemini
	ProviderAnthropic = common.ProviderAnthropic
)

// Fixed model identifiers per provider
const (
	ModelGemini    = "gemini-2.5-flash"
	ModelAnthropic = "claude-3-7-sonnet-latest"
)

const RoleUser = "user"

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption  OptionType = "model"
	MaxTokensOption  OptionType = "max_tokens"
	APITimeoutOption OptionType = "api_timeout"
	BaseURLOption    OptionType = "base_url"
	HTTPClientOption OptionType = "http_client"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to override the provider endpoint
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// WithHTTPClient creates an option to set the HTTP client used for API calls
func WithHTTPClient(client *http.Client) Option {
	return Option{
		Type:  HTTPClientOption,
		Value: client,
	}
}

// Message is a single role-tagged unit of a conversation
type Message struct {
	Role    string
	Content string
}

// Request represents the conversation sent to the LLM
type Request struct {
	Messages []Message
}

// Usage holds the token counters reported with a response
type Usage struct {
	PromptTokenCount     int64
	CandidatesTokenCount int64
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Usage   Usage
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(req Request) Response
}

// DefaultModel returns the fixed model identifier used for a provider.
func DefaultModel(providerName string) string {
	switch providerName {
	case ProviderAnthropic:
		return ModelAnthropic
	default:
		return ModelGemini
	}
}

type config struct {
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
	baseURL    string
	httpClient *http.Client
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok && modelName != "" {
				cfg.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok && maxTokens > 0 {
				cfg.maxTokens = maxTokens
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok && timeout > 0 {
				cfg.apiTimeout = timeout
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok && baseURL != "" {
				cfg.baseURL = baseURL
			}
		case HTTPClientOption:
			if client, ok := opt.Value.(*http.Client); ok && client != nil {
				cfg.httpClient = client
			}
		}
	}
}

// NewLLM creates the client for a provider bound to the given model.
func NewLLM(providerName, apiKey, modelName string, opts ...Option) (LLM, error) {
	var llmClient LLM

	options := []Option{
		WithModel(modelName),
		WithAPITimeout(60),
	}
	options = append(options, opts...)

	switch providerName {
	case ProviderGemini:
		client, err := NewGemini(apiKey, options...)
		if err != nil {
			return nil, err
		}
		llmClient = client
	case ProviderAnthropic:
		client, err := NewAnthropic(apiKey, options...)
		if err != nil {
			return nil, err
		}
		llmClient = client
	default:
		return nil, fmt.Errorf("unsupported provider: %s", providerName)
	}

	logger.Debugf("Using LLM provider %s with model %s", providerName, modelName)

	return llmClient, nil
}

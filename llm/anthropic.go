package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/birmacher/ai-agent/common"
	"github.com/birmacher/ai-agent/logger"
)

// AnthropicModel implements the LLM interface using Anthropic's API
type AnthropicModel struct {
	client     anthropic.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewAnthropic creates a new Anthropic client
func NewAnthropic(apiKey string, opts ...Option) (*AnthropicModel, error) {
	cfg := config{
		modelName:  ModelAnthropic,
		maxTokens:  4000,
		apiTimeout: 60,
	}
	applyOptions(&cfg, opts)

	if cfg.httpClient == nil {
		cfg.httpClient = common.NewRetryableClient(common.DefaultRetryConfig()).StandardClient()
	}

	// Retries belong to the shared HTTP client, not the SDK
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(cfg.httpClient),
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	model := &AnthropicModel{
		client:     anthropic.NewClient(clientOpts...),
		modelName:  cfg.modelName,
		maxTokens:  cfg.maxTokens,
		apiTimeout: cfg.apiTimeout,
	}

	logger.Debugf("Anthropic client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to Anthropic and returns the response
func (a *AnthropicModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to Anthropic model: %s", a.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.apiTimeout)*time.Second)
	defer cancel()

	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := anthropic.MessageParamRoleUser
		if msg.Role == string(anthropic.MessageParamRoleAssistant) {
			role = anthropic.MessageParamRoleAssistant
		}
		messages = append(messages, anthropic.MessageParam{
			Role: role,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(msg.Content),
			},
		})
	}

	messageParams := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.modelName),
		MaxTokens: int64(a.maxTokens),
		Messages:  messages,
	}

	message, err := a.client.Messages.New(ctx, messageParams)
	if err != nil {
		logger.Errorf("Anthropic request failed: %v", err)
		return Response{
			Error: fmt.Errorf("failed to create message: %w", err),
		}
	}

	var content string
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		}
	}

	if len(message.Content) == 0 {
		errMsg := "Anthropic response contained no content"
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	return Response{
		Content: content,
		Usage: Usage{
			PromptTokenCount:     message.Usage.InputTokens,
			CandidatesTokenCount: message.Usage.OutputTokens,
		},
	}
}

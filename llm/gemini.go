package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/birmacher/ai-agent/common"
	"github.com/birmacher/ai-agent/logger"
	"github.com/sashabaranov/go-openai"
)

// GeminiBaseURL is the OpenAI-compatible endpoint of the Gemini API
const GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// GeminiModel implements the LLM interface using the Gemini API
type GeminiModel struct {
	client     *openai.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewGemini creates a new Gemini client. An empty API key is accepted;
// the API rejects it when a prompt is sent.
func NewGemini(apiKey string, opts ...Option) (*GeminiModel, error) {
	cfg := config{
		modelName:  ModelGemini,
		apiTimeout: 60,
		baseURL:    GeminiBaseURL,
	}
	applyOptions(&cfg, opts)

	if cfg.httpClient == nil {
		cfg.httpClient = common.NewRetryableClient(common.DefaultRetryConfig()).StandardClient()
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = cfg.baseURL
	clientConfig.HTTPClient = cfg.httpClient

	model := &GeminiModel{
		client:     openai.NewClientWithConfig(clientConfig),
		modelName:  cfg.modelName,
		maxTokens:  cfg.maxTokens,
		apiTimeout: cfg.apiTimeout,
	}

	logger.Debugf("Gemini client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to Gemini and returns the response
func (g *GeminiModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to Gemini model: %s", g.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(g.apiTimeout)*time.Second)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:     g.modelName,
		Messages:  messages,
		MaxTokens: g.maxTokens,
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		logger.Errorf("Gemini request failed: %v", err)
		return Response{
			Error: fmt.Errorf("failed to generate content: %w", err),
		}
	}

	if len(resp.Choices) == 0 {
		errMsg := "Gemini response contained no candidates"
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokenCount:     int64(resp.Usage.PromptTokens),
			CandidatesTokenCount: int64(resp.Usage.CompletionTokens),
		},
	}
}

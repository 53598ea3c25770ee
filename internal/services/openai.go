package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// openAIClient talks to any OpenAI-compatible chat completion endpoint
// (Groq by default).
type openAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIClient(apiKey, baseURL, model string, temperature float32, timeout time.Duration) CompletionClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &openAIClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
	}
}

func (c *openAIClient) Complete(ctx context.Context, messages []Message) (Completion, error) {
	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		Temperature: c.temperature,
	})
	if err != nil {
		cerr := classifyOpenAIError(err)
		log.Error().Err(err).Str("reason", string(cerr.Reason)).Int("status", cerr.StatusCode).Msg("❌ Completion API error")
		return Completion{}, cerr
	}

	if len(resp.Choices) == 0 {
		return Completion{}, newCompletionError(FailureMalformed, 0, errors.New("response has no choices"))
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Completion{}, newCompletionError(FailureEmpty, 0, errors.New("first choice has no content"))
	}

	return Completion{
		Text:        text,
		Model:       resp.Model,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

func classifyOpenAIError(err error) *CompletionError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return newCompletionError(FailureStatus, apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return newCompletionError(FailureStatus, reqErr.HTTPStatusCode, err)
	}

	if isMalformedBody(err) {
		return newCompletionError(FailureMalformed, 0, err)
	}

	return newCompletionError(FailureTransport, 0, err)
}

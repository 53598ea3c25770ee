package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

type geminiClient struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

// NewGeminiClient builds a Gemini client. An empty baseURL uses the public
// Gemini API endpoint.
func NewGeminiClient(apiKey, baseURL, modelName string, temperature float32, timeout time.Duration) (CompletionClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	return &geminiClient{
		client:      client,
		modelName:   modelName,
		temperature: temperature,
	}, nil
}

// Complete sends system messages as the system instruction and the rest as
// user content.
func (g *geminiClient) Complete(ctx context.Context, messages []Message) (Completion, error) {
	system, contents := toGeminiContents(messages)

	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if len(contents) == 0 {
		// Gemini requires at least one content entry.
		contents = genai.Text(system)
		config.SystemInstruction = nil
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			log.Error().Err(err).Int("status", apiErr.Code).Msg("❌ Gemini API error")
			return Completion{}, newCompletionError(FailureStatus, apiErr.Code, err)
		}
		reason := FailureTransport
		if isMalformedBody(err) {
			reason = FailureMalformed
		}
		log.Error().Err(err).Str("reason", string(reason)).Msg("❌ Gemini API error")
		return Completion{}, newCompletionError(reason, 0, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return Completion{}, newCompletionError(FailureMalformed, 0, errors.New("no candidates in response"))
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return Completion{}, newCompletionError(FailureEmpty, 0, errors.New("no text content in response"))
	}

	completion := Completion{Text: text, Model: g.modelName}
	if resp.UsageMetadata != nil {
		completion.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return completion, nil
}

func toGeminiContents(messages []Message) (string, []*genai.Content) {
	var system []string
	var contents []*genai.Content

	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
	}

	return strings.Join(system, "\n\n"), contents
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"aryavats2/interview-coach/internal/config"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string
	Content string
}

type Completion struct {
	Text        string
	Model       string
	TotalTokens int
}

// CompletionClient performs exactly one blocking call per Complete. Every
// failure is a *CompletionError.
type CompletionClient interface {
	Complete(ctx context.Context, messages []Message) (Completion, error)
}

type FailureReason string

const (
	FailureTransport FailureReason = "transport"
	FailureStatus    FailureReason = "upstream_status"
	FailureMalformed FailureReason = "malformed_response"
	FailureEmpty     FailureReason = "empty_response"
)

type CompletionError struct {
	Reason     FailureReason
	StatusCode int
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Reason, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

func newCompletionError(reason FailureReason, status int, err error) *CompletionError {
	return &CompletionError{Reason: reason, StatusCode: status, Err: err}
}

// isMalformedBody reports whether err came from decoding a response body that
// is not the JSON the provider promised.
func isMalformedBody(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

// NewCompletionClient builds the client for the configured provider.
func NewCompletionClient(cfg config.LLMConfig) (CompletionClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.APIURL, cfg.Model, cfg.Temperature, cfg.Timeout), nil
	case config.ProviderGemini:
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiModel, cfg.Temperature, cfg.Timeout)
	default:
		return nil, errors.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"aryavats2/interview-coach/internal/config"
)

func TestNewCompletionClient(t *testing.T) {
	client, err := NewCompletionClient(config.LLMConfig{
		Provider: "OpenAI",
		APIKey:   "key",
		APIURL:   "http://localhost:1/v1",
		Model:    "m",
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	assert.IsType(t, &openAIClient{}, client)

	_, err = NewCompletionClient(config.LLMConfig{Provider: "anthropic"})
	assert.EqualError(t, err, "unknown llm provider: anthropic")
}

func TestCompletionError(t *testing.T) {
	cause := errors.New("boom")

	err := newCompletionError(FailureStatus, 429, cause)
	assert.Equal(t, "upstream_status (status 429): boom", err.Error())
	assert.ErrorIs(t, err, cause)

	err = newCompletionError(FailureTransport, 0, cause)
	assert.Equal(t, "transport: boom", err.Error())
}

func TestToGeminiContents(t *testing.T) {
	system, contents := toGeminiContents([]Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "hello"},
	})

	assert.Equal(t, "persona", system)
	require.Len(t, contents, 1)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	require.Len(t, contents[0].Parts, 1)
	assert.Equal(t, "hello", contents[0].Parts[0].Text)

	system, contents = toGeminiContents([]Message{{Role: RoleSystem, Content: "only"}})
	assert.Equal(t, "only", system)
	assert.Empty(t, contents)
}

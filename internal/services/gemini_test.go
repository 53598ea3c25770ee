package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geminiBody = `{
  "candidates": [{"content": {"role": "model", "parts": [{"text": "  Describe a race you debugged.  "}]}, "finishReason": "STOP"}],
  "usageMetadata": {"promptTokenCount": 8, "candidatesTokenCount": 6, "totalTokenCount": 14}
}`

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type capturedGeminiRequest struct {
	Path   string
	APIKey string
	Body   struct {
		Contents          []geminiContent `json:"contents"`
		SystemInstruction *geminiContent  `json:"systemInstruction"`
		GenerationConfig  struct {
			Temperature float32 `json:"temperature"`
		} `json:"generationConfig"`
	}
}

func newGeminiServer(t *testing.T, status int, body string) (*httptest.Server, *capturedGeminiRequest) {
	t.Helper()
	captured := &capturedGeminiRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.APIKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func newTestGeminiClient(t *testing.T, srv *httptest.Server) CompletionClient {
	t.Helper()
	client, err := NewGeminiClient("secret", srv.URL+"/", "test-model", 0.7, 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestGeminiClient_Complete(t *testing.T) {
	srv, captured := newGeminiServer(t, http.StatusOK, geminiBody)
	client := newTestGeminiClient(t, srv)

	got, err := client.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are an interviewer."},
		{Role: RoleUser, Content: "Go"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Describe a race you debugged.", got.Text)
	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, 14, got.TotalTokens)

	assert.Contains(t, captured.Path, "test-model:generateContent")
	assert.Equal(t, "secret", captured.APIKey)
	assert.InDelta(t, 0.7, captured.Body.GenerationConfig.Temperature, 1e-6)

	require.NotNil(t, captured.Body.SystemInstruction)
	require.Len(t, captured.Body.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are an interviewer.", captured.Body.SystemInstruction.Parts[0].Text)

	require.Len(t, captured.Body.Contents, 1)
	assert.Equal(t, "user", captured.Body.Contents[0].Role)
	require.Len(t, captured.Body.Contents[0].Parts, 1)
	assert.Equal(t, "Go", captured.Body.Contents[0].Parts[0].Text)
}

func TestGeminiClient_SystemOnlyPromptBecomesContent(t *testing.T) {
	srv, captured := newGeminiServer(t, http.StatusOK, geminiBody)
	client := newTestGeminiClient(t, srv)

	_, err := client.Complete(context.Background(), []Message{{Role: RoleSystem, Content: "Ask a question."}})
	require.NoError(t, err)

	assert.Nil(t, captured.Body.SystemInstruction)
	require.Len(t, captured.Body.Contents, 1)
	require.Len(t, captured.Body.Contents[0].Parts, 1)
	assert.Equal(t, "Ask a question.", captured.Body.Contents[0].Parts[0].Text)
}

func TestGeminiClient_Failures(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantReason FailureReason
		wantStatus int
	}{
		{
			name:       "upstream unavailable",
			status:     http.StatusServiceUnavailable,
			body:       `{"error": {"code": 503, "message": "The model is overloaded.", "status": "UNAVAILABLE"}}`,
			wantReason: FailureStatus,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "truncated json",
			status:     http.StatusOK,
			body:       `{"candidates": [`,
			wantReason: FailureMalformed,
		},
		{
			name:       "not json at all",
			status:     http.StatusOK,
			body:       `not json`,
			wantReason: FailureMalformed,
		},
		{
			name:       "no candidates",
			status:     http.StatusOK,
			body:       `{"candidates": []}`,
			wantReason: FailureMalformed,
		},
		{
			name:       "blank text",
			status:     http.StatusOK,
			body:       `{"candidates": [{"content": {"role": "model", "parts": [{"text": "   "}]}}]}`,
			wantReason: FailureEmpty,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newGeminiServer(t, tc.status, tc.body)
			client := newTestGeminiClient(t, srv)

			_, err := client.Complete(context.Background(), []Message{
				{Role: RoleSystem, Content: "x"},
				{Role: RoleUser, Content: "y"},
			})
			require.Error(t, err)

			var cerr *CompletionError
			require.True(t, errors.As(err, &cerr), "expected CompletionError, got %T", err)
			assert.Equal(t, tc.wantReason, cerr.Reason)
			assert.Equal(t, tc.wantStatus, cerr.StatusCode)
		})
	}
}

func TestGeminiClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := newTestGeminiClient(t, srv)
	srv.Close()

	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "y"}})

	var cerr *CompletionError
	require.True(t, errors.As(err, &cerr), "expected CompletionError, got %T", err)
	assert.Equal(t, FailureTransport, cerr.Reason)
}

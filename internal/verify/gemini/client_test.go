package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renty/internal/config"
	"renty/internal/verify"
	"renty/internal/verify/gemini"
)

func verifierConfig() *config.VerifierConfig {
	return &config.VerifierConfig{
		Provider:    "gemini",
		APIKey:      "test-api-key",
		Model:       "gemini-2.0-flash",
		TimeoutSecs: 5,
	}
}

func envelope(text string) string {
	env := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	b, _ := json.Marshal(env)
	return string(b)
}

func TestComplete_Success(t *testing.T) {
	const inner = `{"is_lease_document": true, "confidence_score": 90}`

	var gotRequest struct {
		Contents []struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
		GenerationConfig struct {
			ResponseMimeType string `json:"responseMimeType"`
		} `json:"generationConfig"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-api-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(envelope(inner)))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(verifierConfig(), server.URL)

	got, err := client.Complete(context.Background(), "Analyze this lease.")

	require.NoError(t, err)
	assert.Equal(t, inner, got)
	require.Len(t, gotRequest.Contents, 1)
	assert.Equal(t, "user", gotRequest.Contents[0].Role)
	require.Len(t, gotRequest.Contents[0].Parts, 1)
	assert.Equal(t, "Analyze this lease.", gotRequest.Contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", gotRequest.GenerationConfig.ResponseMimeType)
}

func TestComplete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(verifierConfig(), server.URL)

	_, err := client.Complete(context.Background(), "prompt")

	var serviceErr *verify.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, http.StatusTooManyRequests, serviceErr.StatusCode)
	assert.Contains(t, serviceErr.Body, "quota exceeded")
}

func TestComplete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(envelope("too late")))
	}))
	defer server.Close()

	cfg := verifierConfig()
	client := gemini.NewClientWithEndpoint(cfg, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "prompt")

	var transportErr *verify.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestComplete_UndecodableEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(verifierConfig(), server.URL)

	_, err := client.Complete(context.Background(), "prompt")

	var serviceErr *verify.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, http.StatusOK, serviceErr.StatusCode)
}

func TestComplete_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(verifierConfig(), server.URL)

	_, err := client.Complete(context.Background(), "prompt")

	var serviceErr *verify.ServiceError
	require.ErrorAs(t, err, &serviceErr)
}

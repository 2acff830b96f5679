package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newGeminiTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewGeminiClient(context.Background(), "key", "", option.WithEndpoint(srv.URL))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGeminiClient_Generate(t *testing.T) {
	var path string
	var body map[string]any
	c := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  Omelette. "}]},"finishReason":"STOP"}]}`))
	})

	out, err := c.Generate(context.Background(), CompletionRequest{
		System:      "You are a helpful assistant.",
		Prompt:      "Recommend a recipe using eggs.",
		MaxTokens:   100,
		Temperature: 0.5,
	})

	require.NoError(t, err)
	assert.Equal(t, "Omelette.", out)
	assert.Equal(t, "gemini", c.Provider())
	assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", path)

	config, ok := body["generationConfig"].(map[string]any)
	require.True(t, ok, body)
	assert.EqualValues(t, 100, config["maxOutputTokens"])
	assert.EqualValues(t, 0.5, config["temperature"])
	assert.Contains(t, body["systemInstruction"], "parts")
}

func TestGeminiClient_RequestModel(t *testing.T) {
	var path string
	c := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Toast."}]},"finishReason":"STOP"}]}`))
	})

	_, err := c.Generate(context.Background(), CompletionRequest{Model: "gemini-1.5-pro", Prompt: "x"})

	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-1.5-pro:generateContent", path)
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	c := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.Generate(context.Background(), CompletionRequest{Prompt: "x"})

	assert.ErrorContains(t, err, "no content generated")
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")

	assert.Error(t, err)
}

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizops-dashboard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.False(t, req.Stream)
		require.NotNil(t, req.MaxTokens)
		assert.Equal(t, 256, *req.MaxTokens)
		assert.Nil(t, req.Temperature)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" Add a summary. "}}]}`))
	}))
	defer srv.Close()

	c := NewClient(config.LLMConfig{APIKey: "secret", BaseURL: srv.URL + "/v1", Model: "test-model", MaxTokens: 256})
	out, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "improve"}})
	require.NoError(t, err)
	assert.Equal(t, "Add a summary.", out)
}

func TestCompleteNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(config.LLMConfig{BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "x"}})
	assert.ErrorContains(t, err, "429")
}

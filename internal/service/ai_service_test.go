package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nura_backend/internal/config"
	"nura_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAITestService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "test-model",
		TimeoutSeconds: 5,
	})
}

func TestGenerateReturnsChoiceText(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "generated text"}},
			},
		})
	}))
	defer srv.Close()

	s := newAITestService(srv.URL)
	text, err := s.Generate(context.Background(), "sys", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "generated text", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestGenerateWrapsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := newAITestService(srv.URL)
	_, err := s.Generate(context.Background(), "", "prompt")
	assert.ErrorIs(t, err, util.ErrAIUnavailable)
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	s := newAITestService(srv.URL)
	_, err := s.Generate(context.Background(), "", "prompt")
	assert.ErrorIs(t, err, util.ErrAIUnavailable)
}

func TestGenerateDisabledWithoutKey(t *testing.T) {
	s := NewAIService(config.AIConfig{BaseURL: "http://unused"})
	assert.False(t, s.Enabled())

	_, err := s.Generate(context.Background(), "", "prompt")
	assert.ErrorIs(t, err, util.ErrAIUnavailable)
}

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitcoach/fitness-coach/internal/ai"
	"fitcoach/fitness-coach/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletionClients_AttributionHeaders(t *testing.T) {
	headers := make(chan http.Header, 2)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	coach, nutrition := newCompletionClients(config.AIConfig{
		BaseURL: ts.URL,
		APIKey:  "test-key",
		Referer: "https://fitness.local",
		Title:   "Fitness Coach",
		Timeout: 5 * time.Second,
	})
	req := ai.ChatRequest{Model: "m", Messages: []ai.Message{{Role: "user", Content: "hi"}}}

	_, err := coach.Complete(context.Background(), req)
	require.NoError(t, err)
	h := <-headers
	assert.Equal(t, "Bearer test-key", h.Get("Authorization"))
	assert.Empty(t, h.Get("HTTP-Referer"))
	assert.Empty(t, h.Get("X-Title"))

	_, err = nutrition.Complete(context.Background(), req)
	require.NoError(t, err)
	h = <-headers
	assert.Equal(t, "Bearer test-key", h.Get("Authorization"))
	assert.Equal(t, "https://fitness.local", h.Get("HTTP-Referer"))
	assert.Equal(t, "Fitness Coach", h.Get("X-Title"))
}

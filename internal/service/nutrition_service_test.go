package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"fitcoach/fitness-coach/internal/ai"
	"fitcoach/fitness-coach/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testModels = []string{"model-a", "model-b", "model-c", "model-d"}

type modelRecorder struct {
	mu     sync.Mutex
	models []string
}

func (r *modelRecorder) add(model string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, model)
}

func (r *modelRecorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.models...)
}

// upstream answers 503 for the first failures requests and 200 afterwards.
func upstream(t *testing.T, failures int32) (*httptest.Server, *atomic.Int32, *modelRecorder) {
	t.Helper()
	var calls atomic.Int32
	models := &modelRecorder{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		var req ai.ChatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		models.add(req.Model)
		if n <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"overloaded"}`))
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"kcal : 70\nprotien : 6\nfat : 5\ncarb : 0"}}]}`))
	}))
	t.Cleanup(ts.Close)
	return ts, &calls, models
}

func TestNutritionService_Fallback(t *testing.T) {
	for k := 0; k < len(testModels); k++ {
		ts, calls, models := upstream(t, int32(k))
		m := metrics.NewTestManager()
		client := &ai.Client{BaseURL: ts.URL, APIKey: "key", HTTPClient: ts.Client()}
		svc := NewNutritionService(client, NutritionOptions{Models: testModels, Temperature: 0.1, MaxTokens: 200}, m)

		resp, err := svc.Estimate(context.Background(), []ai.Message{{Role: "user", Content: "1 egg"}})
		require.NoError(t, err, "k=%d", k)

		var parsed ai.ChatResponse
		require.NoError(t, json.Unmarshal(resp, &parsed))
		assert.Contains(t, parsed.Text(), "kcal : 70")

		assert.Equal(t, int32(k+1), calls.Load(), "k=%d", k)
		assert.Equal(t, testModels[:k+1], models.list())
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterAIAttempts.WithLabelValues("nutrition", testModels[k], "success")))
	}
}

func TestNutritionService_AllFail(t *testing.T) {
	ts, calls, models := upstream(t, 100)
	m := metrics.NewTestManager()
	client := &ai.Client{BaseURL: ts.URL, APIKey: "key", HTTPClient: ts.Client()}
	svc := NewNutritionService(client, NutritionOptions{Models: testModels}, m)

	_, err := svc.Estimate(context.Background(), []ai.Message{{Role: "user", Content: "1 egg"}})
	require.ErrorIs(t, err, ErrAllModelsFailed)
	assert.Equal(t, int32(len(testModels)), calls.Load())
	assert.Equal(t, testModels, models.list())
	for _, model := range testModels {
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterAIAttempts.WithLabelValues("nutrition", model, "failure")))
	}

	var statusErr *ai.StatusError
	assert.ErrorAs(t, err, &statusErr)
}

func TestNutritionService_Request(t *testing.T) {
	completer := &scriptedCompleter{}
	svc := NewNutritionService(completer, NutritionOptions{Models: []string{"only"}, Temperature: 0.1, MaxTokens: 200}, nil)

	_, err := svc.Estimate(context.Background(), []ai.Message{{Role: "user", Content: "100g chicken breast"}})
	require.NoError(t, err)
	require.Len(t, completer.requests, 1)

	req := completer.requests[0]
	assert.Equal(t, "only", req.Model)
	assert.Equal(t, 0.1, req.Temperature)
	assert.Equal(t, 200, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "kcal : [number]")
	assert.Contains(t, req.Messages[0].Content, "protien : [number]")
}

func TestNutritionService_NoModels(t *testing.T) {
	completer := &scriptedCompleter{}
	svc := NewNutritionService(completer, NutritionOptions{}, nil)

	_, err := svc.Estimate(context.Background(), []ai.Message{{Role: "user", Content: "rice"}})
	assert.ErrorIs(t, err, ErrAllModelsFailed)
	assert.Empty(t, completer.requests)
}

func TestNutritionService_StopsOnCancel(t *testing.T) {
	completer := &scriptedCompleter{failures: 10, err: context.Canceled}
	svc := NewNutritionService(completer, NutritionOptions{Models: testModels}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Estimate(ctx, []ai.Message{{Role: "user", Content: "rice"}})
	assert.ErrorIs(t, err, ErrAllModelsFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, completer.requests)
}

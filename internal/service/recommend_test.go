package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletions serves a canned chat-completions reply and records the
// prompt it was asked with.
func fakeCompletions(t *testing.T, reply string, prompt *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)
		if prompt != nil {
			*prompt = req.Messages[0].Content
		}

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: reply}})
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestRecommendationService_ResolvesCatalogMatch(t *testing.T) {
	store := newSeededStore(t)
	var prompt string
	srv := fakeCompletions(t, `{"generatorId":"M002","reasoning":"Highest capacity for the stated load."}`, &prompt)
	defer srv.Close()

	svc := NewRecommendationService(store.GeneratorRepository, srv.URL, "test-model", "")
	result, err := svc.Recommend(context.Background(), RecommendationInput{
		UseCase:    "data center backup",
		PowerNeeds: 1800,
		Budget:     "$800/day",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Generator)
	assert.Equal(t, "M002", result.Generator.ID)
	assert.Equal(t, "Highest capacity for the stated load.", result.Reasoning)

	// The prompt carries the catalog summary and the customer's inputs.
	assert.Contains(t, prompt, `"id":"M002"`)
	assert.Contains(t, prompt, "1800 kW")
	assert.Contains(t, prompt, "data center backup")
}

func TestRecommendationService_NoMatch(t *testing.T) {
	store := newSeededStore(t)
	srv := fakeCompletions(t, `{"generatorId":"","reasoning":"Nothing in the catalog covers 5 MW."}`, nil)
	defer srv.Close()

	svc := NewRecommendationService(store.GeneratorRepository, srv.URL, "test-model", "")
	result, err := svc.Recommend(context.Background(), RecommendationInput{
		UseCase:    "plant",
		PowerNeeds: 5000,
		Budget:     "any",
	})
	require.NoError(t, err)

	assert.Nil(t, result.Generator)
	assert.Contains(t, result.Reasoning, "5 MW")
}

func TestRecommendationService_UnknownIDLeavesGeneratorNil(t *testing.T) {
	store := newSeededStore(t)
	srv := fakeCompletions(t, `{"generatorId":"M999","reasoning":"hallucinated"}`, nil)
	defer srv.Close()

	svc := NewRecommendationService(store.GeneratorRepository, srv.URL, "test-model", "")
	result, err := svc.Recommend(context.Background(), RecommendationInput{
		UseCase:    "site power",
		PowerNeeds: 100,
		Budget:     "$200/day",
	})
	require.NoError(t, err)
	assert.Nil(t, result.Generator)
}

func TestRecommendationService_ValidatesPowerNeeds(t *testing.T) {
	store := newSeededStore(t)
	svc := NewRecommendationService(store.GeneratorRepository, "http://unused", "test-model", "")

	_, err := svc.Recommend(context.Background(), RecommendationInput{PowerNeeds: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecommendationService_UpstreamFailure(t *testing.T) {
	store := newSeededStore(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewRecommendationService(store.GeneratorRepository, srv.URL, "test-model", "")
	_, err := svc.Recommend(context.Background(), RecommendationInput{
		UseCase:    "site power",
		PowerNeeds: 100,
		Budget:     "$200/day",
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "429"))
}

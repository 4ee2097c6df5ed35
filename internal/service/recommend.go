package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rentalhq-backend/internal/logger"
	"rentalhq-backend/internal/repository"
)

// recommendationService asks an OpenAI-compatible chat-completions
// endpoint to pick one catalog model for a customer's free-text needs.
// The collaborator is a black box: only the request/response contract
// matters, and the catalog summary is injected into the prompt the same
// way the storefront's catalog tool exposed it.
type recommendationService struct {
	generatorRepo repository.GeneratorRepository
	client        *http.Client
	baseURL       string
	model         string
	apiKey        string
}

func NewRecommendationService(generatorRepo repository.GeneratorRepository, baseURL, model, apiKey string) RecommendationService {
	return &recommendationService{
		generatorRepo: generatorRepo,
		client:        &http.Client{Timeout: 30 * time.Second},
		baseURL:       baseURL,
		model:         model,
		apiKey:        apiKey,
	}
}

type catalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Capacity    int32  `json:"capacity"`
	PricePerDay int32  `json:"pricePerDay"`
	FuelType    string `json:"fuelType"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *responseFmt  `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFmt struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// recommendation is the reply schema the model is instructed to follow.
type recommendation struct {
	GeneratorID string `json:"generatorId"`
	Reasoning   string `json:"reasoning"`
}

func (s *recommendationService) Recommend(ctx context.Context, input RecommendationInput) (*RecommendationResult, error) {
	if input.PowerNeeds <= 0 {
		return nil, fmt.Errorf("%w: power needs must be positive", ErrValidation)
	}

	generators, err := s.generatorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]catalogEntry, 0, len(generators))
	for _, g := range generators {
		catalog = append(catalog, catalogEntry{
			ID:          g.ID,
			Name:        g.Name,
			Capacity:    g.Capacity,
			PricePerDay: g.PricePerDay,
			FuelType:    string(g.FuelType),
		})
	}
	catalogJSON, err := json.Marshal(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}

	prompt := fmt.Sprintf(`You are an expert assistant for a generator rental company. Your task is to recommend the best generator for a customer based on their needs.

Here are the customer's requirements:
- Use Case: %s
- Power Needs: %d kW
- Daily Budget: %s

Here is the catalog of available generators:
%s

Analyze the catalog and find the single best match for the customer.
Consider the power capacity (it should be equal to or greater than the customer's needs) and the price per day (it should align with their budget).
Prioritize meeting the power needs first, then find the most cost-effective option within their budget.

Respond with a JSON object of the form {"generatorId": "...", "reasoning": "..."}.
Return the ID of the recommended generator and a short reasoning for your choice. If no generator meets the criteria, set generatorId to an empty string and explain why.`,
		input.UseCase, input.PowerNeeds, input.Budget, catalogJSON)

	rec, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result := &RecommendationResult{Reasoning: rec.Reasoning}
	if rec.GeneratorID != "" {
		for i := range generators {
			if generators[i].ID == rec.GeneratorID {
				result.Generator = &generators[i]
				break
			}
		}
		if result.Generator == nil {
			logger.Warn("Recommendation referenced unknown generator", "generator_id", rec.GeneratorID)
		}
	}
	return result, nil
}

func (s *recommendationService) complete(ctx context.Context, prompt string) (*recommendation, error) {
	body, err := json.Marshal(chatRequest{
		Model:          s.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: &responseFmt{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("completion service returned %d: %s", resp.StatusCode, payload)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("completion service returned no choices")
	}

	var rec recommendation
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &rec); err != nil {
		return nil, fmt.Errorf("completion reply did not match the expected schema: %w", err)
	}
	return &rec, nil
}

// internal/services/assistant_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinivasroopa42-commits/royal-cart/internal/config"
)

func assistantWithServer(t *testing.T, handler http.HandlerFunc) *AssistantService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Assistant = config.AssistantConfig{
		GeminiAPIKey: "test-key",
		BaseURL:      server.URL,
		Model:        "gemini-2.5-flash",
		Timeout:      2 * time.Second,
	}
	return NewAssistantService(cfg, nil)
}

func geminiTextResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": text}},
				},
			},
		},
	}
}

func TestSuggestRecipesParsesResponse(t *testing.T) {
	payload := `[{"title":"Banana Shake","description":"Cold and quick","missingIngredients":["ice"],"instructions":["Blend","Serve"]}]`
	svc := assistantWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash")
		json.NewEncoder(w).Encode(geminiTextResponse(payload))
	})

	recipes := svc.SuggestRecipes(context.Background(), []string{"Bananas", "Milk"})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Banana Shake", recipes[0].Title)
	assert.Equal(t, []string{"ice"}, recipes[0].MissingIngredients)
	assert.Len(t, recipes[0].Instructions, 2)
}

func TestSuggestRecipesEmptyIngredientsSkipsCall(t *testing.T) {
	called := false
	svc := assistantWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	recipes := svc.SuggestRecipes(context.Background(), nil)
	assert.Empty(t, recipes)
	assert.False(t, called)
}

func TestSuggestRecipesFailureReturnsEmpty(t *testing.T) {
	svc := assistantWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	recipes := svc.SuggestRecipes(context.Background(), []string{"Bananas"})
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestSuggestRecipesMalformedJSONReturnsEmpty(t *testing.T) {
	svc := assistantWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiTextResponse("not json at all"))
	})

	recipes := svc.SuggestRecipes(context.Background(), []string{"Bananas"})
	assert.Empty(t, recipes)
}

func TestSuggestAddressesParsesLines(t *testing.T) {
	text := "1. Flat 402, B-Block, MG Road, Bengaluru 560001\n" +
		"2) Prestige Towers, 12 Residency Road, 560025\n" +
		"ok\n" +
		"Brigade Gateway, Rajajinagar, 560055\n"
	svc := assistantWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiTextResponse(text))
	})

	suggestions := svc.SuggestAddresses(context.Background(), "MG Road", nil, nil)
	require.Len(t, suggestions, 3, "short lines are dropped")
	assert.Equal(t, "Flat 402, B-Block, MG Road, Bengaluru 560001", suggestions[0].Address)
	assert.Equal(t, "Prestige Towers, 12 Residency Road, 560025", suggestions[1].Address)
}

func TestSuggestAddressesShortInput(t *testing.T) {
	called := false
	svc := assistantWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	suggestions := svc.SuggestAddresses(context.Background(), " a ", nil, nil)
	assert.Empty(t, suggestions)
	assert.False(t, called)
}

func TestAssistantDisabledWithoutKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Assistant = config.AssistantConfig{BaseURL: "http://unused", Model: "m", Timeout: time.Second}
	svc := NewAssistantService(cfg, nil)

	assert.False(t, svc.Enabled())
	assert.Empty(t, svc.SuggestRecipes(context.Background(), []string{"Bananas"}))
	assert.Empty(t, svc.SuggestAddresses(context.Background(), "MG Road", nil, nil))
}

// internal/services/assistant_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/srinivasroopa42-commits/royal-cart/internal/catalog"
	"github.com/srinivasroopa42-commits/royal-cart/internal/config"
	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

// AssistantService calls the Gemini generateContent REST endpoint for
// recipe ideas, smart-shop ingredient extraction and address
// autocomplete. Every call degrades to an empty result on failure so
// the storefront keeps working without the assistant.
type AssistantService struct {
	cfg     *config.Config
	catalog *CatalogService
	client  *http.Client
}

type Recipe struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	MissingIngredients []string `json:"missingIngredients"`
	Instructions       []string `json:"instructions"`
}

type SmartShopResult struct {
	Ingredients []string              `json:"ingredients"`
	Matches     []SmartShopIngredient `json:"matches"`
}

type SmartShopIngredient struct {
	Ingredient string           `json:"ingredient"`
	Products   []models.Product `json:"products"`
}

type AddressSuggestion struct {
	Address string `json:"address"`
}

func NewAssistantService(cfg *config.Config, catalogSvc *CatalogService) *AssistantService {
	return &AssistantService{
		cfg:     cfg,
		catalog: catalogSvc,
		client:  &http.Client{Timeout: cfg.Assistant.Timeout},
	}
}

func (s *AssistantService) Enabled() bool {
	return s.cfg.Assistant.GeminiAPIKey != ""
}

// SuggestRecipes asks for three simple recipes built mostly from the
// given ingredients plus pantry staples.
func (s *AssistantService) SuggestRecipes(ctx context.Context, ingredients []string) []Recipe {
	if len(ingredients) == 0 {
		return []Recipe{}
	}

	prompt := fmt.Sprintf(
		"I have the following ingredients: %s.\n"+
			"Suggest 3 simple recipes I can make primarily using these, plus common pantry staples (salt, oil, pepper).\n"+
			"Return ONLY a JSON array of objects with keys: title, description, missingIngredients (array of strings), instructions (array of strings).",
		strings.Join(ingredients, ", "))

	var recipes []Recipe
	if err := s.generateJSON(ctx, prompt, &recipes); err != nil {
		logrus.WithError(err).Warn("Assistant recipe suggestion failed")
		return []Recipe{}
	}
	return recipes
}

// SmartShop turns a request like "I want to make lasagna" into generic
// ingredients and maps each one onto the catalog.
func (s *AssistantService) SmartShop(ctx context.Context, query string) (*SmartShopResult, error) {
	prompt := fmt.Sprintf(
		"The user wants to buy items for: %q.\n"+
			"List individual generic ingredients needed for this.\n"+
			"Keep it to the top 5-8 essential ingredients.\n"+
			"Return ONLY a JSON array of strings.\n"+
			`Example: ["pasta sheets", "tomato sauce", "ground beef", "cheese", "onion"]`,
		query)

	var ingredients []string
	if err := s.generateJSON(ctx, prompt, &ingredients); err != nil {
		logrus.WithError(err).Warn("Assistant smart-shop failed")
		return &SmartShopResult{Ingredients: []string{}, Matches: []SmartShopIngredient{}}, nil
	}

	products, err := s.catalog.ListProducts(catalog.Query{})
	if err != nil {
		return nil, err
	}

	result := &SmartShopResult{Ingredients: ingredients}
	for _, ingredient := range ingredients {
		result.Matches = append(result.Matches, SmartShopIngredient{
			Ingredient: ingredient,
			Products:   catalog.MatchIngredient(products, ingredient),
		})
	}
	return result, nil
}

var listItemPrefix = regexp.MustCompile(`^\d+[.)]\s*`)

// SuggestAddresses autocompletes a partial address into up to five
// precise delivery addresses. Coordinates, when known, anchor the
// suggestions around the customer.
func (s *AssistantService) SuggestAddresses(ctx context.Context, input string, lat, lng *float64) []AddressSuggestion {
	if len(strings.TrimSpace(input)) < 2 {
		return []AddressSuggestion{}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"Find 5 extremely precise, real-world delivery addresses or landmark buildings based on: %q.\n"+
			"You MUST include building names, specific house/flat numbers (e.g., #402, B-Block), street names, and area pin codes.\n"+
			"Focus on accuracy for delivery purposes.\n"+
			"Format your response as a clear list of full addresses, one per line.",
		input)
	if lat != nil && lng != nil {
		fmt.Fprintf(&sb, "\nThe customer is located near latitude %.6f, longitude %.6f.", *lat, *lng)
	}

	text, err := s.generateText(ctx, sb.String())
	if err != nil {
		logrus.WithError(err).Warn("Assistant address suggestion failed")
		return []AddressSuggestion{}
	}

	var suggestions []AddressSuggestion
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 5 {
			continue
		}
		suggestions = append(suggestions, AddressSuggestion{
			Address: listItemPrefix.ReplaceAllString(line, ""),
		})
		if len(suggestions) == 5 {
			break
		}
	}
	if suggestions == nil {
		return []AddressSuggestion{}
	}
	return suggestions
}

// Gemini generateContent request/response shapes, reduced to the fields
// this service reads and writes.
type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *AssistantService) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	text, err := s.generate(ctx, prompt, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to parse assistant response: %w", err)
	}
	return nil
}

func (s *AssistantService) generateText(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, "")
}

func (s *AssistantService) generate(ctx context.Context, prompt, mimeType string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("assistant is not configured")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if mimeType != "" {
		reqBody.GenerationConfig = &geminiGenerationConfig{ResponseMIMEType: mimeType}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode assistant request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(s.cfg.Assistant.BaseURL, "/"), s.cfg.Assistant.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.Assistant.GeminiAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("assistant returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

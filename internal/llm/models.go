package llm

import (
	"sort"
	"strings"
)

// thinkingMarker flags reasoning-variant model identifiers. Those models run
// best with a lower sampling temperature, so selecting one resets the
// temperature default.
const thinkingMarker = "thinking"

// ModelInfo describes one entry of the model catalog.
type ModelInfo struct {
	ID                 string
	Provider           string
	DefaultTemperature float64
	InputPerMillion    float64
	OutputPerMillion   float64
}

// modelPricing holds per-model pricing in USD per 1M tokens.
type modelPricing struct {
	provider         string
	inputPerMillion  float64
	outputPerMillion float64
}

// catalog maps model identifiers to provider and pricing. Experimental and
// local models have zero pricing.
var catalog = map[string]modelPricing{
	// Google models
	"gemini-2.0-flash":              {provider: "google", inputPerMillion: 0.10, outputPerMillion: 0.40},
	"gemini-2.0-flash-thinking-exp": {provider: "google"},
	"gemini-1.5-flash":              {provider: "google", inputPerMillion: 0.075, outputPerMillion: 0.30},
	"gemini-1.5-pro":                {provider: "google", inputPerMillion: 1.25, outputPerMillion: 5.00},

	// OpenAI models
	"gpt-4o":      {provider: "openai", inputPerMillion: 2.50, outputPerMillion: 10.00},
	"gpt-4o-mini": {provider: "openai", inputPerMillion: 0.15, outputPerMillion: 0.60},

	// Anthropic models
	"claude-sonnet-4-5-20250929": {provider: "anthropic", inputPerMillion: 3.00, outputPerMillion: 15.00},
	"claude-haiku-4-5-20251001":  {provider: "anthropic", inputPerMillion: 0.80, outputPerMillion: 4.00},

	// Local models
	"llama3.2":  {provider: "ollama"},
	"codegemma": {provider: "ollama"},
}

// DefaultTemperature returns the temperature the studio applies when model
// is selected: 0.7 for reasoning variants, 1 for everything else.
func DefaultTemperature(model string) float64 {
	if strings.Contains(model, thinkingMarker) {
		return 0.7
	}
	return 1
}

// KnownModels returns the catalog sorted by provider then identifier.
func KnownModels() []ModelInfo {
	models := make([]ModelInfo, 0, len(catalog))
	for id, p := range catalog {
		models = append(models, ModelInfo{
			ID:                 id,
			Provider:           p.provider,
			DefaultTemperature: DefaultTemperature(id),
			InputPerMillion:    p.inputPerMillion,
			OutputPerMillion:   p.outputPerMillion,
		})
	}
	sort.Slice(models, func(i, j int) bool {
		if models[i].Provider != models[j].Provider {
			return models[i].Provider < models[j].Provider
		}
		return models[i].ID < models[j].ID
	})
	return models
}

// EstimateCost returns the estimated cost in USD for the given model and
// token counts. Unknown models cost 0.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	p, ok := catalog[model]
	if !ok {
		return 0
	}
	inputCost := float64(inputTokens) / 1_000_000.0 * p.inputPerMillion
	outputCost := float64(outputTokens) / 1_000_000.0 * p.outputPerMillion
	return inputCost + outputCost
}

// EstimateTokens gives a rough token count for text, at roughly 4 characters
// per token.
func EstimateTokens(text string) int {
	n := len(text) / 4
	if n == 0 && len(text) > 0 {
		return 1
	}
	return n
}

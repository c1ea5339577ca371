package embeddings

import (
	"fmt"
	"os"
)

// NewEmbedder creates an embedder for the named provider. Supported names:
// "google", "openai", "ollama", or "" for none (example search stays off).
// API keys come from the environment, matching the completion providers.
func NewEmbedder(name string) (Embedder, error) {
	switch name {
	case "":
		return nil, nil

	case "google":
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is not set")
		}
		return NewGoogleEmbedder(apiKey), nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIEmbedder(apiKey), nil

	case "ollama":
		return NewOllamaEmbedder(os.Getenv("OLLAMA_HOST"), ""), nil

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", name)
	}
}

package config

import (
	"github.com/ziadkadry99/sketchpad/internal/studio"
)

// ConfigFileName is the conventional config file in the working directory.
const ConfigFileName = ".sketchpad.yml"

// DefaultOllamaURL is where a local Ollama daemon listens.
const DefaultOllamaURL = "http://localhost:11434"

// DefaultConfig returns a Config with sensible defaults. The sampling values
// and timers mirror the studio session defaults so a config file is only
// needed to change them.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:      ProviderGoogle,
			Model:     studio.DefaultModel,
			Embedding: ProviderGoogle,
			OllamaURL: DefaultOllamaURL,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Generation: GenerationConfig{
			MaxTokens: studio.DefaultMaxTokens,
			TopP:      studio.DefaultTopP,
			TopK:      studio.DefaultTopK,
		},
		Studio: StudioConfig{
			AutoSaveDelay:     studio.DefaultAutoSaveDelay,
			AutoGenerateDelay: studio.DefaultAutoGenerateDelay,
		},
	}
}

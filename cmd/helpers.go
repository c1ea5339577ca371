package cmd

import (
	"fmt"

	"github.com/ziadkadry99/sketchpad/internal/config"
	"github.com/ziadkadry99/sketchpad/internal/embeddings"
	"github.com/ziadkadry99/sketchpad/internal/llm"
	"github.com/ziadkadry99/sketchpad/internal/studio"
)

// createProviderFromConfig creates the completion provider, wrapped with the
// outbound rate limiter when requests_per_minute is set.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	var provider llm.Provider

	if cfg.Provider.Name == config.ProviderOllama {
		url := cfg.Provider.OllamaURL
		if url == "" {
			url = config.DefaultOllamaURL
		}
		provider = llm.NewOllamaProvider(url, cfg.Provider.Model)
	} else {
		var err error
		provider, err = llm.NewProvider(string(cfg.Provider.Name), cfg.Provider.Model)
		if err != nil {
			return nil, err
		}
	}

	if rpm := cfg.Generation.RequestsPerMinute; rpm > 0 {
		provider = llm.NewRateLimitedProvider(provider, rpm)
	}
	return provider, nil
}

// createEmbedderFromConfig creates the embeddings backend for library search.
// An empty provider.embedding means search stays disabled.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	if cfg.Provider.Embedding == config.ProviderOllama {
		return embeddings.NewOllamaEmbedder(cfg.Provider.OllamaURL, ""), nil
	}
	return embeddings.NewEmbedder(string(cfg.Provider.Embedding))
}

// sessionConfigFromConfig translates the file config into the session
// settings shared by the editor, the generation proxy, and the MCP tools.
func sessionConfigFromConfig(cfg *config.Config, provider llm.Provider) studio.Config {
	return studio.Config{
		Provider:          provider,
		Model:             cfg.Provider.Model,
		MaxTokens:         cfg.Generation.MaxTokens,
		TopP:              cfg.Generation.TopP,
		TopK:              cfg.Generation.TopK,
		AutoSaveDelay:     cfg.Studio.AutoSaveDelay,
		AutoGenerateDelay: cfg.Studio.AutoGenerateDelay,
	}
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `sketchpad init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

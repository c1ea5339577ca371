package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/sketchpad/internal/llm"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .sketchpad.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to sketchpad! Let's configure your studio.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"google", "openai", "anthropic", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Model selection, narrowed to the chosen provider.
	modelPrompt := promptui.Select{
		Label: "Select model",
		Items: modelsFor(provider),
	}
	_, model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}

	// 3. HTTP port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: "8080",
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Extra sketches for the example library.
	dirPrompt := promptui.Prompt{
		Label:   "Local sketch directory (blank for built-ins only)",
		Default: "",
	}
	sketchDir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("sketch dir: %w", err)
	}

	// Build the config.
	cfg := DefaultConfig()
	cfg.Provider.Name = provider
	cfg.Provider.Model = model
	cfg.Provider.Embedding = embeddingProviderFor(provider)
	cfg.Server.Port = port
	cfg.Studio.SketchDir = sketchDir

	// Check for API key.
	envVar := APIKeyEnvVar(provider)
	if envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running sketchpad serve.\n", envVar)
		}
	}

	// Save to .sketchpad.yml.
	if err := cfg.Save(ConfigFileName); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", ConfigFileName)
	return cfg, nil
}

// modelsFor lists the catalog model identifiers for one provider.
func modelsFor(p ProviderType) []string {
	var ids []string
	for _, m := range llm.KnownModels() {
		if m.Provider == string(p) {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// embeddingProviderFor returns the embedding backend that pairs with the
// chosen completion provider. Anthropic has no embeddings endpoint, so
// library search runs on Google embeddings there.
func embeddingProviderFor(p ProviderType) ProviderType {
	switch p {
	case ProviderOllama:
		return ProviderOllama
	case ProviderOpenAI:
		return ProviderOpenAI
	default:
		return ProviderGoogle
	}
}

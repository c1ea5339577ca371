package config

import "time"

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderGoogle    ProviderType = "google"
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level sketchpad configuration, corresponding to .sketchpad.yml.
type Config struct {
	Provider   ProviderConfig   `yaml:"provider" koanf:"provider"`
	Server     ServerConfig     `yaml:"server" koanf:"server"`
	Generation GenerationConfig `yaml:"generation" koanf:"generation"`
	Studio     StudioConfig     `yaml:"studio" koanf:"studio"`
}

// ProviderConfig selects the completion vendor and model. API keys are read
// from the environment only, never from the config file.
type ProviderConfig struct {
	Name      ProviderType `yaml:"name" koanf:"name"`
	Model     string       `yaml:"model" koanf:"model"`
	Embedding ProviderType `yaml:"embedding" koanf:"embedding"`
	OllamaURL string       `yaml:"ollama_url" koanf:"ollama_url"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AllowedOrigins  []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// GenerationConfig holds the sampling parameters sent with every completion
// and the optional outbound rate limit (0 disables it).
type GenerationConfig struct {
	MaxTokens         int     `yaml:"max_tokens" koanf:"max_tokens"`
	TopP              float64 `yaml:"top_p" koanf:"top_p"`
	TopK              int     `yaml:"top_k" koanf:"top_k"`
	RequestsPerMinute int     `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}

// StudioConfig holds the editor session timers and the optional directory of
// extra library sketches.
type StudioConfig struct {
	AutoSaveDelay     time.Duration `yaml:"auto_save_delay" koanf:"auto_save_delay"`
	AutoGenerateDelay time.Duration `yaml:"auto_generate_delay" koanf:"auto_generate_delay"`
	SketchDir         string        `yaml:"sketch_dir" koanf:"sketch_dir"`
}

// MarshalYAML writes the delays in the "2s" form instead of nanoseconds so
// the saved file stays editable by hand.
func (s StudioConfig) MarshalYAML() (any, error) {
	return struct {
		AutoSaveDelay     string `yaml:"auto_save_delay"`
		AutoGenerateDelay string `yaml:"auto_generate_delay"`
		SketchDir         string `yaml:"sketch_dir"`
	}{
		AutoSaveDelay:     s.AutoSaveDelay.String(),
		AutoGenerateDelay: s.AutoGenerateDelay.String(),
		SketchDir:         s.SketchDir,
	}, nil
}

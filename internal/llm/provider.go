package llm

import (
	"context"

	"github.com/lexsift/lexsift/internal/model"
)

// Provider is the interface to a text-completion backend. Responses are
// best-effort and never guaranteed deterministic; callers must treat a
// failure as a degraded result, not a pipeline fault.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces a completion for the prompt, optionally steered by
	// a system instruction
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest contains the input for a completion call.
type GenerateRequest struct {
	// Prompt is the user instruction
	Prompt string

	// System is an optional system instruction
	System string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling; zero means use the provider default
	Temperature float32
}

// GenerateResponse contains the completion output.
type GenerateResponse struct {
	// Text is the generated completion, untrimmed
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption where the backend reports it
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1024,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:   mc.Provider,
		Model:      mc.Model,
		APIKey:     mc.APIKey,
		BaseURL:    mc.BaseURL,
		Timeout:    mc.Timeout,
		MaxTokens:  mc.MaxTokens,
		HTTPProxy:  mc.HTTPProxy,
		HTTPSProxy: mc.HTTPSProxy,
		NoProxy:    mc.NoProxy,
	}
}

// defaultTemperature keeps completions focused; legal rewriting wants
// little creativity.
const defaultTemperature float32 = 0.1

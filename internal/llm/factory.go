package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a new text-completion provider based on configuration.
// An empty provider name disables completion: callers receive (nil, nil)
// and must degrade to rule-based behavior.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

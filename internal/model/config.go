package model

import "time"

// Config holds the full application configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls URL ingestion.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// LLMConfig configures the text-completion provider.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai", "anthropic", "ollama", "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"` // Never written to config files
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`

	// Proxy settings for raw-HTTP providers
	HTTPProxy  string `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// CacheConfig controls memoization of simplification results.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// AnalysisConfig controls which analysis stages run and their budgets.
type AnalysisConfig struct {
	UseAI              bool    `yaml:"use_ai" mapstructure:"use_ai"`                 // Allow AI escalation in classification
	Simplify           bool    `yaml:"simplify" mapstructure:"simplify"`             // Run batch simplification
	MaxSimplifyClauses int     `yaml:"max_simplify_clauses" mapstructure:"max_simplify_clauses"`
	SimplifyMaxLength  int     `yaml:"simplify_max_length" mapstructure:"simplify_max_length"`
	LLMRequestsPerSec  float64 `yaml:"llm_requests_per_sec" mapstructure:"llm_requests_per_sec"`
}

// ConcurrencyConfig controls the batch (multi-file) worker pool. A single
// document is still analyzed start-to-finish by one goroutine.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "lexsift/0.1 (+https://github.com/lexsift/lexsift)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default: analysis degrades to rule-based
			Timeout:   30,
			MaxTokens: 1024,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Analysis: AnalysisConfig{
			UseAI:              false,
			Simplify:           false,
			MaxSimplifyClauses: 10,
			SimplifyMaxLength:  500,
			LLMRequestsPerSec:  2,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}

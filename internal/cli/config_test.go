package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestBuildConfigDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
	if cfg.Analysis.MaxSimplifyClauses != defaultMaxClauses {
		t.Errorf("unexpected clause budget: %d", cfg.Analysis.MaxSimplifyClauses)
	}
	if cfg.LLM.Provider != "" {
		t.Errorf("expected no provider without an AI stage, got %q", cfg.LLM.Provider)
	}
}

func TestBuildConfigReadsViperLayer(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("analysis.max_simplify_clauses", 3)
	viper.Set("cache.enabled", false)
	viper.Set("http.user_agent", "custom-agent/2.0")

	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analysis.MaxSimplifyClauses != 3 {
		t.Errorf("config file value not applied: %d", cfg.Analysis.MaxSimplifyClauses)
	}
	if cfg.Cache.Enabled {
		t.Error("config file cache setting not applied")
	}
	if cfg.HTTP.UserAgent != "custom-agent/2.0" {
		t.Errorf("config file user agent not applied: %q", cfg.HTTP.UserAgent)
	}
	// Keys absent from the file keep their defaults
	if cfg.Analysis.SimplifyMaxLength != defaultMaxLength {
		t.Errorf("unset key lost its default: %d", cfg.Analysis.SimplifyMaxLength)
	}
}

func TestBuildConfigFlagsOverrideConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("analysis.max_simplify_clauses", 3)

	maxClauses = 5
	t.Cleanup(func() { maxClauses = defaultMaxClauses })

	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analysis.MaxSimplifyClauses != 5 {
		t.Errorf("explicit flag did not win over config file: %d", cfg.Analysis.MaxSimplifyClauses)
	}
}

func TestBuildConfigAIStageRequiresKey(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("OPENAI_API_KEY", "")

	useAI = true
	t.Cleanup(func() { useAI = false })

	if _, err := buildConfig(); err == nil {
		t.Fatal("expected an error without OPENAI_API_KEY")
	}
}

func TestBuildConfigFileProviderWithoutAIStage(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("OPENAI_API_KEY", "")

	viper.Set("llm.provider", "openai")

	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("rule-based commands must not require an API key: %v", err)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("config file provider lost: %q", cfg.LLM.Provider)
	}
}

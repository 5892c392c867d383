package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lexsift/lexsift/internal/model"
	"github.com/lexsift/lexsift/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	useAI       bool
	simplify    bool
	maxClauses  int
	maxLength   int
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a legal document file",
	Long: `Analyze extracts text from a legal document (PDF, DOCX, TXT or HTML) and:
- Segments it into clauses with locators and type labels
- Recognizes parties, dates, monetary values, obligations and contacts
- Classifies the document type with explainable rule scores
- Optionally simplifies clauses into plain language (requires an LLM provider)

Example:
  lexsift analyze contract.pdf
  lexsift analyze nda.docx --json report.json --md report.md
  lexsift analyze lease.txt --ai --simplify --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Analysis flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable simplification cache")
	analyzeCmd.Flags().BoolVar(&useAI, "ai", false, "allow AI classification when rule scores are inconclusive")
	analyzeCmd.Flags().BoolVar(&simplify, "simplify", false, "simplify clauses into plain language")
	analyzeCmd.Flags().IntVar(&maxClauses, "max-clauses", defaultMaxClauses, "maximum clauses to simplify")
	analyzeCmd.Flags().IntVar(&maxLength, "max-length", defaultMaxLength, "maximum length of a simplified clause")

	// LLM flags
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)

	report, err := p.AnalyzeFile(ctx, path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if err := p.RenderReport(report, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// Shared flag defaults. A flag left at its default defers to the config
// file and environment layers.
const (
	defaultMaxClauses = 10
	defaultMaxLength  = 500
)

// buildConfig assembles the configuration shared by all analysis commands.
// Defaults come first, then the config file and LEXSIFT_* environment via
// viper, then explicit flags on top.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if noCache {
		cfg.Cache.Enabled = false
	}
	if useAI {
		cfg.Analysis.UseAI = true
	}
	if simplify {
		cfg.Analysis.Simplify = true
	}
	if maxClauses != defaultMaxClauses {
		cfg.Analysis.MaxSimplifyClauses = maxClauses
	}
	if maxLength != defaultMaxLength {
		cfg.Analysis.SimplifyMaxLength = maxLength
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}

	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	// An LLM provider is required only when an AI stage is requested or a
	// provider was named explicitly. A provider configured in the file
	// alone must not break rule-based commands on a missing API key.
	needsProvider := cfg.Analysis.UseAI || cfg.Analysis.Simplify || llmProvider != ""
	if needsProvider && cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}

	if needsProvider {
		switch cfg.LLM.Provider {
		case "openai":
			if key := os.Getenv("OPENAI_API_KEY"); key != "" {
				cfg.LLM.APIKey = key
			}
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
				cfg.LLM.APIKey = key
			}
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/lexsift/lexsift/internal/cache"
	"github.com/lexsift/lexsift/internal/clause"
	"github.com/lexsift/lexsift/internal/ingest"
	"github.com/lexsift/lexsift/internal/llm"
	"github.com/spf13/cobra"
)

// simplifyCmd represents the simplify command
var simplifyCmd = &cobra.Command{
	Use:   "simplify <file>",
	Short: "Rewrite a document's clauses into plain language",
	Long: `Simplify segments a document into clauses and rewrites them into
plain language through the configured LLM provider. Clauses that fail
to simplify are reported with the failure, not dropped.

Example:
  lexsift simplify contract.pdf
  lexsift simplify lease.txt --max-clauses 5 --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runSimplify,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)

	simplifyCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall simplification timeout")
	simplifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable simplification cache")
	simplifyCmd.Flags().IntVar(&maxClauses, "max-clauses", defaultMaxClauses, "maximum clauses to simplify")
	simplifyCmd.Flags().IntVar(&maxLength, "max-length", defaultMaxLength, "maximum length of a simplified clause")
	simplifyCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	simplifyCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runSimplify(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// This command is the simplification stage, so an LLM provider is
	// always required
	simplify = true
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	doc, err := ingest.ProcessFile(args[0])
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	clauses := clause.NewSegmenter().Extract(doc.Text)
	if len(clauses) == 0 {
		return fmt.Errorf("no clauses found in %s", doc.Filename)
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return fmt.Errorf("initialize LLM provider: %w", err)
	}

	var results cache.Cache
	if cfg.Cache.Enabled {
		results = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	s := clause.NewSimplifier(provider, results, cfg.Analysis.LLMRequestsPerSec)
	simplifications := s.BatchSimplify(ctx, clauses,
		cfg.Analysis.MaxSimplifyClauses, cfg.Analysis.SimplifyMaxLength)

	fmt.Printf("\n")
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("  Simplified Clauses: %s\n", doc.Filename)
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("\n")

	for _, simp := range simplifications {
		fmt.Printf("── %s (%s)\n", simp.Locator, simp.Type)
		if simp.Error != "" {
			fmt.Printf("   %s\n\n", simp.Simplified)
			continue
		}
		fmt.Printf("   %s\n", simp.Simplified)
		fmt.Printf("   (%d to %d characters, %.2f%% reduction)\n\n",
			simp.OriginalLength, simp.SimplifiedLength, simp.ReductionPercentage)
	}

	fmt.Printf("Simplified %d of %d clauses\n\n", len(simplifications), len(clauses))

	return nil
}

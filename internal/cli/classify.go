package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/lexsift/lexsift/internal/classify"
	"github.com/lexsift/lexsift/internal/ingest"
	"github.com/lexsift/lexsift/internal/llm"
	"github.com/spf13/cobra"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Classify a document's type with explainable rule scores",
	Long: `Classify determines the document type (NDA, lease, employment contract
and so on) using keyword and pattern scoring. With --ai, inconclusive
rule scores escalate to the configured LLM provider.

Example:
  lexsift classify contract.pdf
  lexsift classify unusual.txt --ai --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&useAI, "ai", false, "allow AI classification when rule scores are inconclusive")
	classifyCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	classifyCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	doc, err := ingest.ProcessFile(args[0])
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		provider, err = llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}
	}

	c := classify.NewClassifier(provider).Classify(ctx, doc.Text, cfg.Analysis.UseAI)
	characteristics := classify.Characteristics(doc.Text)

	fmt.Printf("\n")
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("  Classification: %s\n", doc.Filename)
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("\n")
	fmt.Printf("  Document type:  %s\n", c.DocumentType)
	fmt.Printf("  Confidence:     %.0f%%\n", c.Confidence)
	fmt.Printf("  Method:         %s\n", c.Method)
	if c.Reasoning != "" {
		fmt.Printf("  Reasoning:      %s\n", c.Reasoning)
	}
	fmt.Printf("  Formality:      %s\n", characteristics.EstimatedFormality)
	fmt.Printf("\n")

	if len(c.RuleScores) > 0 {
		fmt.Printf("  Rule scores:\n")
		for _, ts := range c.RuleScores {
			fmt.Printf("    %-35s %.0f\n", ts.Type, ts.Score)
		}
		fmt.Printf("\n")
	}

	if similar := classify.SuggestSimilar(c.DocumentType); len(similar) > 0 {
		fmt.Printf("  Similar types:\n")
		for _, t := range similar {
			fmt.Printf("    - %s\n", t)
		}
		fmt.Printf("\n")
	}

	return nil
}

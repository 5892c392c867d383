package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/lexsift/lexsift/internal/clause"
	"github.com/lexsift/lexsift/internal/llm"
	"github.com/spf13/cobra"
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain <term>",
	Short: "Explain a legal term in plain language",
	Long: `Explain asks the configured LLM provider to explain a legal term in
simple, clear language.

Example:
  lexsift explain "force majeure" --llm-provider openai
  lexsift explain indemnification --llm-provider ollama`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	explainCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runExplain(cmd *cobra.Command, args []string) error {
	term := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return fmt.Errorf("initialize LLM provider: %w", err)
	}

	simplifier := clause.NewSimplifier(provider, nil, 0)
	fmt.Println(simplifier.ExplainTerm(ctx, term))

	return nil
}

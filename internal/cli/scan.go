package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lexsift/lexsift/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	userAgent string
	maxBytes  int64
	noRobots  bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a web page and analyze its text as a legal document",
	Long: `Scan fetches a web page (terms of service, privacy policy, published
contract) and runs the full analysis on its visible text.

robots.txt is respected by default.

Example:
  lexsift scan https://example.com/terms-of-service
  lexsift scan https://example.com/privacy --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	scanCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// HTTP flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip the robots.txt check")

	// Analysis flags
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable simplification cache")
	scanCmd.Flags().BoolVar(&useAI, "ai", false, "allow AI classification when rule scores are inconclusive")
	scanCmd.Flags().BoolVar(&simplify, "simplify", false, "simplify clauses into plain language")
	scanCmd.Flags().IntVar(&maxClauses, "max-clauses", defaultMaxClauses, "maximum clauses to simplify")
	scanCmd.Flags().IntVar(&maxLength, "max-length", defaultMaxLength, "maximum length of a simplified clause")

	// LLM flags
	scanCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTP.Timeout = timeout
	}
	if cmd.Flags().Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if noRobots {
		cfg.HTTP.RespectRobots = false
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}

	p := pipeline.NewPipeline(cfg)

	report, err := p.AnalyzeURL(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if err := p.RenderReport(report, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

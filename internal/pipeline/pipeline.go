// Package pipeline orchestrates the complete analysis of a document:
// ingestion, clause segmentation, entity extraction, classification and
// optional clause simplification.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lexsift/lexsift/internal/cache"
	"github.com/lexsift/lexsift/internal/classify"
	"github.com/lexsift/lexsift/internal/clause"
	"github.com/lexsift/lexsift/internal/entity"
	"github.com/lexsift/lexsift/internal/ingest"
	"github.com/lexsift/lexsift/internal/llm"
	"github.com/lexsift/lexsift/internal/model"
)

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	fetcher    *ingest.Fetcher
	segmenter  *clause.Segmenter
	extractor  *entity.Extractor
	classifier *classify.Classifier
	simplifier *clause.Simplifier
	renderer   *Renderer
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	// Create LLM provider if configured
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			provider = p
		}
	}

	var results cache.Cache
	if cfg.Cache.Enabled {
		results = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	return &Pipeline{
		fetcher:    ingest.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, cfg.HTTP.RespectRobots),
		segmenter:  clause.NewSegmenter(),
		extractor:  entity.NewExtractor(),
		classifier: classify.NewClassifier(provider),
		simplifier: clause.NewSimplifier(provider, results, cfg.Analysis.LLMRequestsPerSec),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
	}
}

// AnalyzeFile extracts text from a document file and analyzes it
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	doc, err := ingest.ProcessFile(path)
	if err != nil {
		return nil, fmt.Errorf("process file: %w", err)
	}
	return p.analyze(ctx, doc)
}

// AnalyzeURL fetches a web page and analyzes its visible text
func (p *Pipeline) AnalyzeURL(ctx context.Context, url string) (*model.Report, error) {
	doc, err := p.fetcher.FetchDocument(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	return p.analyze(ctx, doc)
}

// AnalyzeText analyzes raw text directly, bypassing file extraction
func (p *Pipeline) AnalyzeText(ctx context.Context, text string, name string) (*model.Report, error) {
	cleaned := ingest.CleanText(text)
	doc := &model.Document{
		Text:     cleaned,
		Filename: name,
		FileType: "text",
		Meta:     ingest.Metadata(cleaned),
	}
	return p.analyze(ctx, doc)
}

func (p *Pipeline) analyze(ctx context.Context, doc *model.Document) (*model.Report, error) {
	if doc.Text == "" {
		return nil, fmt.Errorf("document %s contains no text", doc.Filename)
	}

	verbose := p.config.Output.Verbose

	// 1. Segment clauses
	clauses := p.segmenter.Extract(doc.Text)
	if verbose {
		fmt.Fprintf(os.Stderr, "Segmented %d clauses from %s\n", len(clauses), doc.Filename)
	}

	// 2. Extract entities
	entities := p.extractor.Extract(doc.Text)

	// 3. Classify document
	classification := p.classifier.Classify(ctx, doc.Text, p.config.Analysis.UseAI)
	if verbose {
		fmt.Fprintf(os.Stderr, "Classified as %s (%.0f%%, %s)\n",
			classification.DocumentType, classification.Confidence, classification.Method)
	}

	report := &model.Report{
		Document:   *doc,
		AnalyzedAt: time.Now().UTC(),

		Clauses:       clauses,
		ClauseSummary: model.SummarizeClauses(clauses),

		Entities:      entities,
		EntitySummary: entities.Summary(),

		Classification:  classification,
		Characteristics: classify.Characteristics(doc.Text),
		SimilarTypes:    classify.SuggestSimilar(classification.DocumentType),
	}

	// 4. Simplify clauses if enabled (after classification, never affects it)
	if p.config.Analysis.Simplify {
		report.Simplifications = p.simplifier.BatchSimplify(ctx, clauses,
			p.config.Analysis.MaxSimplifyClauses, p.config.Analysis.SimplifyMaxLength)
		if verbose {
			fmt.Fprintf(os.Stderr, "Simplified %d clauses\n", len(report.Simplifications))
		}
	}

	return report, nil
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string) error {
	verbose := p.config.Output.Verbose

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}

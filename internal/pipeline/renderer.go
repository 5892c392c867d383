package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lexsift/lexsift/internal/model"
)

// Renderer writes analysis reports as JSON and Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to the given path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a Markdown document to the given path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Legal Document Analysis: %s\n\n", report.Document.Filename)
	fmt.Fprintf(&b, "Analyzed: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	// Classification
	fmt.Fprintf(&b, "## Classification\n\n")
	fmt.Fprintf(&b, "- **Document type:** %s\n", report.Classification.DocumentType)
	fmt.Fprintf(&b, "- **Confidence:** %.0f%%\n", report.Classification.Confidence)
	fmt.Fprintf(&b, "- **Method:** %s\n", report.Classification.Method)
	if report.Classification.Reasoning != "" {
		fmt.Fprintf(&b, "- **Reasoning:** %s\n", report.Classification.Reasoning)
	}
	if len(report.Classification.RuleScores) > 0 {
		fmt.Fprintf(&b, "\n| Candidate | Score |\n|---|---|\n")
		for _, ts := range report.Classification.RuleScores {
			fmt.Fprintf(&b, "| %s | %.0f |\n", ts.Type, ts.Score)
		}
	}
	if len(report.SimilarTypes) > 0 {
		fmt.Fprintf(&b, "\nSimilar document types: %s\n", strings.Join(report.SimilarTypes, ", "))
	}
	fmt.Fprintf(&b, "\n")

	// Document characteristics
	c := report.Characteristics
	fmt.Fprintf(&b, "## Characteristics\n\n")
	fmt.Fprintf(&b, "| Signal | Present |\n|---|---|\n")
	fmt.Fprintf(&b, "| Parties | %s |\n", yesNo(c.HasParties))
	fmt.Fprintf(&b, "| Monetary terms | %s |\n", yesNo(c.HasMonetaryTerms))
	fmt.Fprintf(&b, "| Dates | %s |\n", yesNo(c.HasDates))
	fmt.Fprintf(&b, "| Signatures | %s |\n", yesNo(c.HasSignatures))
	fmt.Fprintf(&b, "| Legal jargon | %s |\n", yesNo(c.HasLegalJargon))
	fmt.Fprintf(&b, "\nEstimated formality: **%s**\n\n", c.EstimatedFormality)

	// Clauses
	fmt.Fprintf(&b, "## Clauses (%d)\n\n", report.ClauseSummary.TotalClauses)
	fmt.Fprintf(&b, "Total words: %d, average per clause: %.2f\n\n",
		report.ClauseSummary.TotalWords, report.ClauseSummary.AvgWordsPerClause)
	if len(report.Clauses) > 0 {
		fmt.Fprintf(&b, "| Locator | Type | Words | Content |\n|---|---|---|---|\n")
		for _, cl := range report.Clauses {
			fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
				cl.Locator, cl.Type, cl.WordCount, truncateCell(cl.Content, 120))
		}
		fmt.Fprintf(&b, "\n")
	}

	// Entities
	s := report.EntitySummary
	fmt.Fprintf(&b, "## Entities\n\n")
	fmt.Fprintf(&b, "Parties: %d, dates: %d, monetary values: %d, obligations: %d, legal terms: %d, contacts: %d\n\n",
		s.Parties, s.Dates, s.MonetaryValues, s.Obligations, s.LegalTerms, s.ContactInfo)

	if len(report.Entities.Parties) > 0 {
		fmt.Fprintf(&b, "### Parties\n\n")
		for _, p := range report.Entities.Parties {
			if p.Alias != "" {
				fmt.Fprintf(&b, "- %s (%s) as %s\n", p.Name, p.Alias, p.Role)
			} else {
				fmt.Fprintf(&b, "- %s as %s\n", p.Name, p.Role)
			}
		}
		fmt.Fprintf(&b, "\n")
	}
	if len(report.Entities.Dates) > 0 {
		fmt.Fprintf(&b, "### Dates\n\n")
		for _, d := range report.Entities.Dates {
			fmt.Fprintf(&b, "- %s (%s)\n", d.Date, d.Format)
		}
		fmt.Fprintf(&b, "\n")
	}
	if len(report.Entities.MonetaryValues) > 0 {
		fmt.Fprintf(&b, "### Monetary Values\n\n")
		for _, m := range report.Entities.MonetaryValues {
			fmt.Fprintf(&b, "- %s (%s)\n", m.Amount, m.Currency)
		}
		fmt.Fprintf(&b, "\n")
	}
	if len(report.Entities.LegalTerms) > 0 {
		fmt.Fprintf(&b, "### Legal Terms\n\n")
		for _, t := range report.Entities.LegalTerms {
			fmt.Fprintf(&b, "- %s (%d)\n", t.Term, t.Count)
		}
		fmt.Fprintf(&b, "\n")
	}

	// Simplifications
	if len(report.Simplifications) > 0 {
		fmt.Fprintf(&b, "## Simplified Clauses\n\n")
		for _, simp := range report.Simplifications {
			fmt.Fprintf(&b, "### %s (%s)\n\n", simp.Locator, simp.Type)
			if simp.Error != "" {
				fmt.Fprintf(&b, "_%s_\n\n", simp.Simplified)
				continue
			}
			fmt.Fprintf(&b, "> %s\n\n", strings.ReplaceAll(simp.Original, "\n", " "))
			fmt.Fprintf(&b, "%s\n\n", simp.Simplified)
			fmt.Fprintf(&b, "Reduction: %.2f%% (%d to %d characters)\n\n",
				simp.ReductionPercentage, simp.OriginalLength, simp.SimplifiedLength)
		}
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\n")
		fmt.Fprintf(&b, "Generated by lexsift. Analysis is heuristic and informational; it is not legal advice.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderSummary prints a short report summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n")
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("  %s\n", report.Document.Filename)
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("\n")
	fmt.Printf("  Document type:  %s (%.0f%%, %s)\n",
		report.Classification.DocumentType, report.Classification.Confidence, report.Classification.Method)
	fmt.Printf("  Formality:      %s\n", report.Characteristics.EstimatedFormality)
	fmt.Printf("  Clauses:        %d (%d words)\n",
		report.ClauseSummary.TotalClauses, report.ClauseSummary.TotalWords)

	s := report.EntitySummary
	fmt.Printf("  Entities:       %d parties, %d dates, %d amounts, %d obligations\n",
		s.Parties, s.Dates, s.MonetaryValues, s.Obligations)

	if len(report.Simplifications) > 0 {
		fmt.Printf("  Simplified:     %d clauses\n", len(report.Simplifications))
	}
	fmt.Printf("\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// truncateCell shortens text for a Markdown table cell and strips pipes
// and newlines that would break the table.
func truncateCell(text string, limit int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "|", "\\|")
	if len(text) > limit {
		text = text[:limit] + "..."
	}
	return text
}

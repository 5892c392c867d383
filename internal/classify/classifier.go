// Package classify scores a whole document against the document-type
// signature catalog, escalating to the text-completion provider only when
// rule-based confidence is low.
package classify

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lexsift/lexsift/internal/llm"
	"github.com/lexsift/lexsift/internal/model"
)

// aiEscalationThreshold is the rule score below which the AI path runs.
const aiEscalationThreshold = 5

// maxAITextLength bounds how much document text is sent to the provider.
const maxAITextLength = 2000

const classifySystemPrompt = "You are a legal document classification expert. Your task is to accurately identify the type of legal document based on its content."

// Classifier scores documents against the signature catalog.
type Classifier struct {
	provider   llm.Provider
	signatures []Signature
}

// NewClassifier creates a classifier. The provider may be nil; the AI path
// then reports its failure in the result's reasoning and falls back to the
// top rule-based candidate.
func NewClassifier(provider llm.Provider) *Classifier {
	return &Classifier{
		provider:   provider,
		signatures: signatures,
	}
}

// Classify produces a document-level verdict. With useAI false, or when
// the rule score is already convincing, the result is purely rule-based.
// Every path yields a non-empty DocumentType and a confidence in [0, 100].
func (c *Classifier) Classify(ctx context.Context, text string, useAI bool) model.Classification {
	scores := c.ruleScores(text)

	top := scores
	if len(top) > 3 {
		top = top[:3]
	}

	if useAI && len(top) > 0 && top[0].Score < aiEscalationThreshold {
		return c.aiClassify(ctx, text, top)
	}

	if len(top) == 0 {
		return model.Classification{
			DocumentType: "Unknown",
			Confidence:   0,
			Method:       model.MethodRuleBased,
			Reasoning:    "Empty signature catalog",
		}
	}

	confidence := model.ClampConfidence(math.Min(top[0].Score/10*100, 100))
	return model.Classification{
		DocumentType: top[0].Type,
		Confidence:   model.Round2(confidence),
		Method:       model.MethodRuleBased,
		RuleScores:   top,
		Reasoning:    "Identified based on keyword and pattern matching",
	}
}

// ruleScores scores every catalog entry and returns all candidates sorted
// by score descending, ties broken by catalog declaration order.
func (c *Classifier) ruleScores(text string) []model.TypeScore {
	lower := strings.ToLower(text)

	scores := make([]model.TypeScore, len(c.signatures))
	for i, sig := range c.signatures {
		var score float64
		for _, keyword := range sig.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				score++
			}
		}
		for _, pattern := range sig.Patterns {
			score += 2 * float64(len(pattern.FindAllStringIndex(text, -1)))
		}
		scores[i] = model.TypeScore{Type: sig.Name, Score: score}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// aiClassify asks the provider to pick among the top rule-based candidates
// and parses the labeled answer lines back out. Any failure degrades to
// the top rule-based candidate; the error is preserved in Reasoning.
func (c *Classifier) aiClassify(ctx context.Context, text string, candidates []model.TypeScore) model.Classification {
	fallbackType := "Unknown"
	if len(candidates) > 0 {
		fallbackType = candidates[0].Type
	}

	if len(text) > maxAITextLength {
		text = text[:maxAITextLength] + "..."
	}

	names := make([]string, len(candidates))
	for i, cand := range candidates {
		names[i] = cand.Type
	}
	candidateList := strings.Join(names, ", ")
	if candidateList == "" {
		candidateList = "NDA, Employment Contract, Lease Agreement, Service Agreement"
	}

	prompt := fmt.Sprintf(`Analyze this legal document and classify it into one of these categories: %s

Document text:
%s

Provide your answer in this format:
Document Type: [type]
Confidence: [High/Medium/Low]
Reasoning: [brief explanation]`, candidateList, text)

	if c.provider == nil {
		return model.Classification{
			DocumentType: fallbackType,
			Confidence:   50,
			Method:       model.MethodAIEnhanced,
			RuleScores:   candidates,
			Reasoning:    "Error in AI classification: no text-completion provider configured",
		}
	}

	resp, err := c.provider.Generate(ctx, llm.GenerateRequest{
		Prompt: prompt,
		System: classifySystemPrompt,
	})
	if err != nil {
		return model.Classification{
			DocumentType: fallbackType,
			Confidence:   50,
			Method:       model.MethodAIEnhanced,
			RuleScores:   candidates,
			Reasoning:    fmt.Sprintf("Error in AI classification: %v", err),
		}
	}

	docType, confidence, reasoning := parseAIResponse(resp.Text)
	docType = c.resolveType(docType, fallbackType)

	return model.Classification{
		DocumentType: docType,
		Confidence:   model.ClampConfidence(confidence),
		Method:       model.MethodAIEnhanced,
		RuleScores:   candidates,
		Reasoning:    reasoning,
	}
}

// parseAIResponse pulls the three labeled lines out of a best-effort
// completion. Missing or malformed fields fall back to conservative
// defaults rather than erroring.
func parseAIResponse(response string) (docType string, confidence float64, reasoning string) {
	confidenceLabel := "medium"

	for _, line := range strings.Split(response, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "document type:"):
			docType = valueAfterColon(line)
		case strings.Contains(lower, "confidence:"):
			confidenceLabel = strings.ToLower(valueAfterColon(line))
		case strings.Contains(lower, "reasoning:"):
			reasoning = valueAfterColon(line)
		}
	}

	switch confidenceLabel {
	case "high":
		confidence = 90
	case "low":
		confidence = 50
	default:
		confidence = 70
	}

	return docType, confidence, reasoning
}

func valueAfterColon(line string) string {
	_, after, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}

// resolveType validates the AI-returned type against the catalog. An
// exact match is kept; otherwise the first catalog name contained in the
// response wins; otherwise the rule-based fallback.
func (c *Classifier) resolveType(docType, fallback string) string {
	if docType != "" {
		for _, sig := range c.signatures {
			if sig.Name == docType {
				return docType
			}
		}
	}

	lower := strings.ToLower(docType)
	for _, sig := range c.signatures {
		if lower != "" && strings.Contains(lower, strings.ToLower(sig.Name)) {
			return sig.Name
		}
	}

	if fallback == "" {
		return "Unknown"
	}
	return fallback
}

package clause

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/lexsift/lexsift/internal/cache"
	"github.com/lexsift/lexsift/internal/llm"
	"github.com/lexsift/lexsift/internal/model"
)

// Simplification defaults.
const (
	DefaultMaxLength   = 500
	DefaultMaxClauses  = 10
	minSimplifyContent = 50
)

const simplifySystemPrompt = `You are a legal document simplification expert. Your task is to rewrite complex legal clauses into simple, clear language that a layperson can understand. Follow these rules:

1. Use simple, everyday words instead of legal jargon
2. Break down complex sentences into shorter ones
3. Explain legal terms in plain language
4. Keep the core meaning and legal intent intact
5. Use active voice instead of passive voice
6. Be concise but complete
7. Format as clear bullet points if the clause has multiple parts`

const explainTermSystemPrompt = "You are a legal terminology expert. Explain legal terms in simple, clear language that anyone can understand."

// Simplifier rewrites clauses into plain language through an injected
// text-completion provider. Service failures are always represented as
// data in the returned record, never raised past this boundary.
type Simplifier struct {
	provider llm.Provider
	results  cache.Cache   // May be nil: caching disabled
	limiter  *rate.Limiter // Paces completion calls during batch runs
}

// NewSimplifier creates a simplifier. The provider may be nil, in which
// case every simplification reports a configuration error in its record.
// requestsPerSecond <= 0 disables pacing.
func NewSimplifier(provider llm.Provider, results cache.Cache, requestsPerSecond float64) *Simplifier {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return &Simplifier{
		provider: provider,
		results:  results,
		limiter:  limiter,
	}
}

// Simplify rewrites one clause into plain language. The response is
// trimmed and hard-truncated at maxLength with a trailing ellipsis; the
// cut can land mid-word and that is accepted behavior.
func (s *Simplifier) Simplify(ctx context.Context, clauseText string, maxLength int) model.Simplification {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	key := cache.SimplificationKey(clauseText, maxLength)
	if s.results != nil {
		if data, ok := s.results.Get(key); ok {
			var cached model.Simplification
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	if s.provider == nil {
		return errorRecord(clauseText, fmt.Errorf("no text-completion provider configured"))
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return errorRecord(clauseText, err)
	}

	prompt := fmt.Sprintf(`Simplify this legal clause into plain, easy-to-understand language:

ORIGINAL CLAUSE:
%s

SIMPLIFIED VERSION:`, clauseText)

	resp, err := s.provider.Generate(ctx, llm.GenerateRequest{
		Prompt: prompt,
		System: simplifySystemPrompt,
	})
	if err != nil {
		return errorRecord(clauseText, err)
	}

	simplified := strings.TrimSpace(resp.Text)
	if len(simplified) > maxLength {
		simplified = simplified[:maxLength] + "..."
	}

	result := model.Simplification{
		Original:            clauseText,
		Simplified:          simplified,
		OriginalLength:      len(clauseText),
		SimplifiedLength:    len(simplified),
		ReductionPercentage: reductionPercentage(len(clauseText), len(simplified)),
	}

	if s.results != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.results.Set(key, data, 0)
		}
	}

	return result
}

// BatchSimplify simplifies clauses in input order. Only the first
// maxClauses clauses are considered; clauses under the minimum content
// length are skipped and still count against that budget.
func (s *Simplifier) BatchSimplify(ctx context.Context, clauses []model.Clause, maxClauses, maxLength int) []model.Simplification {
	if maxClauses <= 0 {
		maxClauses = DefaultMaxClauses
	}
	if maxClauses > len(clauses) {
		maxClauses = len(clauses)
	}

	var results []model.Simplification
	for i, c := range clauses[:maxClauses] {
		if len(c.Content) < minSimplifyContent {
			continue
		}

		result := s.Simplify(ctx, c.Content, maxLength)
		result.Locator = c.Locator
		if result.Locator == "" {
			result.Locator = "Clause " + strconv.Itoa(i+1)
		}
		result.Type = c.Type
		if result.Type == "" {
			result.Type = GeneralType
		}
		results = append(results, result)
	}

	return results
}

// ExplainTerm explains one legal term in plain language. Failures come
// back embedded in the returned text, matching the simplify boundary.
func (s *Simplifier) ExplainTerm(ctx context.Context, term string) string {
	if s.provider == nil {
		return "Error explaining term: no text-completion provider configured"
	}

	prompt := fmt.Sprintf("Explain what '%s' means in legal contexts, using simple language:", term)
	resp, err := s.provider.Generate(ctx, llm.GenerateRequest{
		Prompt: prompt,
		System: explainTermSystemPrompt,
	})
	if err != nil {
		return fmt.Sprintf("Error explaining term: %v", err)
	}

	return strings.TrimSpace(resp.Text)
}

func errorRecord(clauseText string, err error) model.Simplification {
	return model.Simplification{
		Original:            clauseText,
		Simplified:          fmt.Sprintf("Error simplifying clause: %v", err),
		OriginalLength:      len(clauseText),
		SimplifiedLength:    0,
		ReductionPercentage: 0,
		Error:               err.Error(),
	}
}

func reductionPercentage(originalLen, simplifiedLen int) float64 {
	if originalLen == 0 {
		return 0
	}
	return model.Round2((1 - float64(simplifiedLen)/float64(originalLen)) * 100)
}

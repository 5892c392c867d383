// Package entity recognizes typed facts in legal text: parties, dates,
// monetary values, obligations, legal terminology, and contact details.
// Every pass is independent pattern matching over the same text; there is
// no cross-category deduplication and no linkage back to clauses.
package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lexsift/lexsift/internal/model"
)

// Per-category output caps, bounding result size on noisy documents.
const (
	maxParties     = 10
	maxDates       = 20
	maxMonetary    = 15
	maxObligations = 20
	maxLegalTerms  = 15
	maxContacts    = 10
)

// contextWindow is the number of characters kept on each side of a match.
const contextWindow = 50

// Extractor runs the six recognition passes.
type Extractor struct {
	legalTerms         []termPattern
	obligationKeywords []string
}

// termPattern is one legal vocabulary term with its compiled word-boundary
// pattern.
type termPattern struct {
	term string
	re   *regexp.Regexp
}

// legalVocabulary is the fixed terminology checked by the legal-terms pass.
var legalVocabulary = []string{
	"agreement", "contract", "covenant", "warranty", "indemnification",
	"liability", "breach", "termination", "arbitration", "jurisdiction",
	"confidentiality", "non-disclosure", "intellectual property",
	"consideration", "force majeure", "governing law", "amendment",
	"severability", "waiver", "notice", "assignment", "subcontract",
}

// NewExtractor creates an extractor with the standard legal vocabulary.
func NewExtractor() *Extractor {
	terms := make([]termPattern, len(legalVocabulary))
	for i, term := range legalVocabulary {
		terms[i] = termPattern{
			term: term,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`),
		}
	}

	return &Extractor{
		legalTerms: terms,
		obligationKeywords: []string{
			"shall", "must", "will", "agrees to", "obligated to", "required to",
			"responsible for", "undertakes to", "covenant to", "bound to",
		},
	}
}

// Extract runs all six passes over the text. A category with no matches is
// an empty slice, never an error.
func (e *Extractor) Extract(text string) model.EntitySet {
	return model.EntitySet{
		Parties:        e.extractParties(text),
		Dates:          e.extractDates(text),
		MonetaryValues: e.extractMonetaryValues(text),
		Obligations:    e.extractObligations(text),
		LegalTerms:     e.extractLegalTerms(text),
		ContactInfo:    e.extractContactInfo(text),
	}
}

// contextAround returns the surrounding text for a match span, with ellipsis
// markers when the window is truncated at either document boundary. Window
// edges are snapped outward to rune boundaries so multibyte characters are
// never split.
func contextAround(text string, start, end int) string {
	ctxStart := start - contextWindow
	if ctxStart < 0 {
		ctxStart = 0
	}
	for ctxStart > 0 && !utf8.RuneStart(text[ctxStart]) {
		ctxStart--
	}
	ctxEnd := end + contextWindow
	if ctxEnd > len(text) {
		ctxEnd = len(text)
	}
	for ctxEnd < len(text) && !utf8.RuneStart(text[ctxEnd]) {
		ctxEnd++
	}

	ctx := strings.TrimSpace(text[ctxStart:ctxEnd])
	if ctxStart > 0 {
		ctx = "..." + ctx
	}
	if ctxEnd < len(text) {
		ctx = ctx + "..."
	}
	return ctx
}

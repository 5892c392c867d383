package clause

import "strings"

// clauseType pairs the match key (lowercase) with the display label.
type clauseType struct {
	key   string
	label string
}

// clauseTypes is the ordered vocabulary checked first. Matching is by
// substring, so order matters: "term" precedes "termination" and wins for
// any text containing either word.
var clauseTypes = []clauseType{
	{"definitions", "Definitions"},
	{"scope", "Scope"},
	{"term", "Term"},
	{"termination", "Termination"},
	{"payment", "Payment"},
	{"confidentiality", "Confidentiality"},
	{"intellectual property", "Intellectual Property"},
	{"warranties", "Warranties"},
	{"liability", "Liability"},
	{"indemnification", "Indemnification"},
	{"force majeure", "Force Majeure"},
	{"dispute resolution", "Dispute Resolution"},
	{"governing law", "Governing Law"},
	{"notices", "Notices"},
	{"amendments", "Amendments"},
	{"severability", "Severability"},
}

// fallbackGroup maps trigger words to a label; groups are checked in order
// and the first group with any hit wins.
type fallbackGroup struct {
	words []string
	label string
}

var fallbackGroups = []fallbackGroup{
	{[]string{"define", "definition", "means"}, "Definitions"},
	{[]string{"terminate", "termination", "cancel"}, "Termination"},
	{[]string{"pay", "payment", "fee", "compensation"}, "Payment"},
	{[]string{"confidential", "secret", "proprietary"}, "Confidentiality"},
	{[]string{"liable", "liability", "responsible"}, "Liability"},
	{[]string{"warrant", "guarantee", "represent"}, "Warranties"},
}

// GeneralType is the label for clauses matching nothing in the vocabulary.
const GeneralType = "General"

// ClassifyType labels clause text by keyword matching. Vocabulary names are
// matched space-insensitively ("intellectualproperty" in the flattened
// text); fallback keyword groups run next; General is the final default.
// Never returns an empty string.
func ClassifyType(text string) string {
	lower := strings.ToLower(text)
	flat := strings.ReplaceAll(lower, " ", "")

	for _, ct := range clauseTypes {
		if strings.Contains(flat, strings.ReplaceAll(ct.key, " ", "")) {
			return ct.label
		}
	}

	for _, g := range fallbackGroups {
		for _, w := range g.words {
			if strings.Contains(lower, w) {
				return g.label
			}
		}
	}

	return GeneralType
}

// TypeVocabulary returns the display labels of the clause type catalog.
func TypeVocabulary() []string {
	labels := make([]string, len(clauseTypes))
	for i, ct := range clauseTypes {
		labels[i] = ct.label
	}
	return labels
}

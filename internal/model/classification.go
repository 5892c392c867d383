package model

import "math"

// Classification method labels.
const (
	MethodRuleBased  = "Rule-based"
	MethodAIEnhanced = "AI-enhanced"
)

// Classification is one document-level verdict. Produced fresh on every
// call, never merged with a prior result.
type Classification struct {
	DocumentType string      `json:"document_type"`     // Catalog type name, AI free text, or "Unknown"
	Confidence   float64     `json:"confidence"`        // Always within [0, 100]
	Method       string      `json:"method"`            // MethodRuleBased or MethodAIEnhanced
	RuleScores   []TypeScore `json:"rule_based_scores"` // Top 3 candidates, descending
	Reasoning    string      `json:"reasoning,omitempty"`
}

// TypeScore pairs a candidate document type with its rule-based score.
// Kept as an ordered slice so the top-3 ranking survives serialization;
// ties are broken by catalog declaration order.
type TypeScore struct {
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// Characteristics are auxiliary document signals. They inform display and
// diagnostics but never gate classification.
type Characteristics struct {
	HasParties         bool   `json:"has_parties"`
	HasMonetaryTerms   bool   `json:"has_monetary_terms"`
	HasDates           bool   `json:"has_dates"`
	HasSignatures      bool   `json:"has_signatures"`
	HasLegalJargon     bool   `json:"has_legal_jargon"`
	EstimatedFormality string `json:"estimated_formality"` // "High", "Medium", or "Low"
}

// Formality estimates.
const (
	FormalityHigh   = "High"
	FormalityMedium = "Medium"
	FormalityLow    = "Low"
)

// ClampConfidence bounds a confidence value to [0, 100].
func ClampConfidence(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package model

// Clause is one contiguous span of document text treated as a single
// semantic unit by the segmenter.
type Clause struct {
	Locator   string `json:"locator"`    // Hierarchical number ("1.2."), section title, or synthetic index ("P3")
	Content   string `json:"content"`    // Clause text, trimmed
	Type      string `json:"type"`       // One of the clause type vocabulary, or "General"
	WordCount int    `json:"word_count"` // Whitespace-token count of Content
}

// Simplification is the derived companion record produced when a clause is
// rewritten into plain language. The clause itself is never mutated.
type Simplification struct {
	Locator             string  `json:"locator,omitempty"`
	Type                string  `json:"type,omitempty"`
	Original            string  `json:"original"`
	Simplified          string  `json:"simplified"`
	OriginalLength      int     `json:"original_length"`
	SimplifiedLength    int     `json:"simplified_length"`
	ReductionPercentage float64 `json:"reduction_percentage"`

	// Error holds the service failure message when the text-completion call
	// did not succeed. Failures surface here as data, never as a fault.
	Error string `json:"error,omitempty"`
}

// ClauseSummary aggregates statistics over a set of extracted clauses.
type ClauseSummary struct {
	TotalClauses      int            `json:"total_clauses"`
	TotalWords        int            `json:"total_words"`
	AvgWordsPerClause float64        `json:"avg_words_per_clause"`
	TypeCounts        map[string]int `json:"clause_types"`
}

// SummarizeClauses computes summary statistics for extracted clauses.
func SummarizeClauses(clauses []Clause) ClauseSummary {
	summary := ClauseSummary{TypeCounts: map[string]int{}}
	if len(clauses) == 0 {
		return summary
	}

	for _, c := range clauses {
		summary.TotalWords += c.WordCount
		summary.TypeCounts[c.Type]++
	}
	summary.TotalClauses = len(clauses)
	summary.AvgWordsPerClause = Round2(float64(summary.TotalWords) / float64(len(clauses)))
	return summary
}

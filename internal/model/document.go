package model

import "time"

// Document is the output of text extraction: cleaned raw text plus derived
// metadata. Analysis components consume Text only.
type Document struct {
	Text     string       `json:"text"`
	Filename string       `json:"filename"`
	FileType string       `json:"file_type"` // Extension (".pdf", ".docx", ".txt", ".html") or "url"
	Source   string       `json:"source,omitempty"` // Original URL when fetched from the web
	Meta     DocumentMeta `json:"metadata"`
}

// DocumentMeta holds cheap heuristics derived from the extracted text.
type DocumentMeta struct {
	WordCount        int     `json:"word_count"`
	CharCount        int     `json:"char_count"`
	EstimatedClauses int     `json:"estimated_clauses"`     // Count of ". " / "; " delimiters
	LegalDensity     float64 `json:"legal_keyword_density"` // Percent of the legal vocabulary present
	FileSize         int     `json:"file_size"`             // Byte length of the extracted text
}

// Report is the complete analysis result for one document. It exists only
// for the lifetime of one request and is never persisted or merged.
type Report struct {
	Document   Document  `json:"document"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	Clauses       []Clause      `json:"clauses"`
	ClauseSummary ClauseSummary `json:"clause_summary"`

	Entities      EntitySet     `json:"entities"`
	EntitySummary EntitySummary `json:"entity_summary"`

	Classification  Classification  `json:"classification"`
	Characteristics Characteristics `json:"characteristics"`
	SimilarTypes    []string        `json:"similar_types,omitempty"`

	Simplifications []Simplification `json:"simplifications,omitempty"`
}

package model

// EntitySet groups every entity recognized in one document, one field per
// category. Categories are independent: the same text span may appear in
// more than one, and records are never linked back to clauses.
type EntitySet struct {
	Parties        []PartyEntity      `json:"parties"`
	Dates          []DateEntity       `json:"dates"`
	MonetaryValues []MonetaryEntity   `json:"monetary_values"`
	Obligations    []ObligationEntity `json:"obligations"`
	LegalTerms     []LegalTermEntity  `json:"legal_terms"`
	ContactInfo    []ContactEntity    `json:"contact_info"`
}

// PartyEntity is a contracting party or organization mention.
type PartyEntity struct {
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"` // Short name from "hereinafter referred to as"
	Role    string `json:"role"`            // "Party 1", "Party 2", "Party", or "Organization"
	Context string `json:"context"`
}

// DateEntity is a date mention. Format records which pattern matched; the
// slash form stays labeled "DD/MM/YYYY or MM/DD/YYYY" because the locale is
// genuinely ambiguous and the extractor does not guess.
type DateEntity struct {
	Date    string `json:"date"`
	Format  string `json:"format"`
	Context string `json:"context"`
}

// MonetaryEntity is a monetary amount. Amount keeps the matched surface
// text; Value is the comma-stripped numeric string.
type MonetaryEntity struct {
	Amount   string `json:"amount"`
	Value    string `json:"value"`
	Currency string `json:"currency"`
	Context  string `json:"context"`
}

// ObligationEntity is a sentence flagged by an obligation verb.
type ObligationEntity struct {
	Clause  string `json:"clause"`
	Keyword string `json:"keyword"` // First obligation verb that matched
}

// LegalTermEntity is a legal vocabulary term with its occurrence count and
// the context of its first occurrence.
type LegalTermEntity struct {
	Term    string `json:"term"`
	Count   int    `json:"count"`
	Context string `json:"context"`
}

// ContactEntity is an email address or phone number.
type ContactEntity struct {
	Type    string `json:"type"` // "email" or "phone"
	Value   string `json:"value"`
	Context string `json:"context"`
}

// EntitySummary holds per-category counts.
type EntitySummary struct {
	Parties        int `json:"parties"`
	Dates          int `json:"dates"`
	MonetaryValues int `json:"monetary_values"`
	Obligations    int `json:"obligations"`
	LegalTerms     int `json:"legal_terms"`
	ContactInfo    int `json:"contact_info"`
}

// Summary returns per-category entity counts.
func (s EntitySet) Summary() EntitySummary {
	return EntitySummary{
		Parties:        len(s.Parties),
		Dates:          len(s.Dates),
		MonetaryValues: len(s.MonetaryValues),
		Obligations:    len(s.Obligations),
		LegalTerms:     len(s.LegalTerms),
		ContactInfo:    len(s.ContactInfo),
	}
}

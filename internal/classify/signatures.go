package classify

import "regexp"

// Signature defines how text is scored against one document type: +1 per
// keyword present (case-insensitive substring), +2 per regex match, with
// repeated pattern hits accumulating.
type Signature struct {
	Name     string
	Keywords []string
	Patterns []*regexp.Regexp
}

// signatures is the static document-type catalog, defined at process start
// and shared read-only across all classification calls. Declaration order
// is the tie-break for equal scores.
var signatures = []Signature{
	{
		Name: "Non-Disclosure Agreement (NDA)",
		Keywords: []string{
			"confidential", "non-disclosure", "proprietary information",
			"trade secret", "confidentiality", "receiving party", "disclosing party",
		},
		Patterns: compile(`non[-\s]disclosure`, `NDA`, `confidentiality\s+agreement`),
	},
	{
		Name: "Employment Contract",
		Keywords: []string{
			"employee", "employer", "employment", "salary", "compensation",
			"job title", "duties", "responsibilities", "benefits", "vacation",
			"termination of employment", "at-will",
		},
		Patterns: compile(`employment\s+agreement`, `offer\s+letter`, `employee\s+handbook`),
	},
	{
		Name: "Lease Agreement",
		Keywords: []string{
			"lease", "tenant", "landlord", "rent", "premises", "property",
			"security deposit", "maintenance", "lease term", "rental",
		},
		Patterns: compile(`lease\s+agreement`, `rental\s+agreement`, `tenancy`),
	},
	{
		Name: "Service Agreement",
		Keywords: []string{
			"services", "service provider", "client", "deliverables",
			"scope of work", "professional services", "consulting",
			"independent contractor", "statement of work",
		},
		Patterns: compile(`service\s+agreement`, `consulting\s+agreement`,
			`professional\s+services`, `statement\s+of\s+work`, `SOW`),
	},
	{
		Name: "Purchase Agreement",
		Keywords: []string{
			"purchase", "buyer", "seller", "goods", "merchandise",
			"delivery", "shipping", "purchase price", "payment terms",
		},
		Patterns: compile(`purchase\s+agreement`, `sales\s+agreement`,
			`purchase\s+order`, `bill\s+of\s+sale`),
	},
	{
		Name: "Partnership Agreement",
		Keywords: []string{
			"partner", "partnership", "capital contribution", "profit sharing",
			"loss sharing", "management", "dissolution", "partnership interest",
		},
		Patterns: compile(`partnership\s+agreement`, `joint\s+venture`),
	},
	{
		Name: "License Agreement",
		Keywords: []string{
			"license", "licensor", "licensee", "intellectual property",
			"usage rights", "royalty", "sublicense", "license fee",
		},
		Patterns: compile(`license\s+agreement`, `licensing\s+agreement`, `software\s+license`),
	},
	{
		Name: "Loan Agreement",
		Keywords: []string{
			"loan", "lender", "borrower", "principal", "interest rate",
			"repayment", "default", "collateral", "promissory note",
		},
		Patterns: compile(`loan\s+agreement`, `promissory\s+note`, `credit\s+agreement`),
	},
	{
		Name: "Settlement Agreement",
		Keywords: []string{
			"settlement", "dispute", "claim", "release", "parties agree",
			"consideration", "waiver", "mutual release",
		},
		Patterns: compile(`settlement\s+agreement`, `release\s+agreement`, `compromise`),
	},
	{
		Name: "Franchise Agreement",
		Keywords: []string{
			"franchise", "franchisor", "franchisee", "territory",
			"operating system", "franchise fee", "royalty",
		},
		Patterns: compile(`franchise\s+agreement`, `franchising`),
	},
}

// compile builds case-insensitive patterns for a signature.
func compile(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

// similarTypes maps each document type to related types, used for
// display suggestions only.
var similarTypes = map[string][]string{
	"Non-Disclosure Agreement (NDA)": {"Service Agreement", "Employment Contract"},
	"Employment Contract":            {"Service Agreement", "Non-Disclosure Agreement (NDA)"},
	"Lease Agreement":                {"Purchase Agreement", "Service Agreement"},
	"Service Agreement":              {"Employment Contract", "Non-Disclosure Agreement (NDA)"},
	"Purchase Agreement":             {"Lease Agreement", "Loan Agreement"},
	"Partnership Agreement":          {"Service Agreement", "License Agreement"},
	"License Agreement":              {"Service Agreement", "Partnership Agreement"},
	"Loan Agreement":                 {"Purchase Agreement", "Settlement Agreement"},
	"Settlement Agreement":           {"Loan Agreement", "Service Agreement"},
	"Franchise Agreement":            {"Partnership Agreement", "License Agreement"},
}

// SuggestSimilar returns document types related to the given type, or nil
// for unknown types.
func SuggestSimilar(docType string) []string {
	return similarTypes[docType]
}

// CatalogTypes returns the document type names in catalog order.
func CatalogTypes() []string {
	names := make([]string, len(signatures))
	for i, s := range signatures {
		names[i] = s.Name
	}
	return names
}

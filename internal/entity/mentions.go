package entity

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lexsift/lexsift/internal/model"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.;]\s+`)

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// North-American phone numbers: optional country code, optional parens
	// and separators. Deliberately loose.
	phoneRe = regexp.MustCompile(`\b(?:\+?1[-.]?)?\(?([0-9]{3})\)?[-.]?([0-9]{3})[-.]?([0-9]{4})\b`)
)

// extractObligations splits the text into sentences and flags any sentence
// containing an obligation verb. The first matching keyword wins; the
// whole sentence is kept.
func (e *Extractor) extractObligations(text string) []model.ObligationEntity {
	var obligations []model.ObligationEntity

	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		lower := strings.ToLower(sentence)
		for _, keyword := range e.obligationKeywords {
			if strings.Contains(lower, keyword) {
				obligations = append(obligations, model.ObligationEntity{
					Clause:  strings.TrimSpace(sentence),
					Keyword: keyword,
				})
				break
			}
		}
	}

	if len(obligations) > maxObligations {
		obligations = obligations[:maxObligations]
	}
	return obligations
}

// extractLegalTerms counts word-boundary occurrences of the legal
// vocabulary, keeping the context of the first occurrence per term.
// Results are sorted by count descending; ties keep vocabulary order.
func (e *Extractor) extractLegalTerms(text string) []model.LegalTermEntity {
	lower := strings.ToLower(text)
	var terms []model.LegalTermEntity

	for _, tp := range e.legalTerms {
		matches := tp.re.FindAllStringIndex(lower, -1)
		if len(matches) == 0 {
			continue
		}

		first := matches[0]
		terms = append(terms, model.LegalTermEntity{
			Term:    tp.term,
			Count:   len(matches),
			Context: contextAround(text, first[0], first[1]),
		})
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Count > terms[j].Count
	})

	if len(terms) > maxLegalTerms {
		terms = terms[:maxLegalTerms]
	}
	return terms
}

// extractContactInfo pools email addresses and phone numbers with a type
// discriminator.
func (e *Extractor) extractContactInfo(text string) []model.ContactEntity {
	var contacts []model.ContactEntity

	for _, m := range emailRe.FindAllStringIndex(text, -1) {
		contacts = append(contacts, model.ContactEntity{
			Type:    "email",
			Value:   text[m[0]:m[1]],
			Context: contextAround(text, m[0], m[1]),
		})
	}

	for _, m := range phoneRe.FindAllStringIndex(text, -1) {
		contacts = append(contacts, model.ContactEntity{
			Type:    "phone",
			Value:   text[m[0]:m[1]],
			Context: contextAround(text, m[0], m[1]),
		})
	}

	if len(contacts) > maxContacts {
		contacts = contacts[:maxContacts]
	}
	return contacts
}

package entity

import (
	"regexp"
	"strings"

	"github.com/lexsift/lexsift/internal/model"
)

// Date format labels. The slash form is inherently ambiguous between day-
// first and month-first locales; the label records that ambiguity instead
// of guessing.
const (
	FormatMonthName = "Month DD, YYYY"
	FormatSlash     = "DD/MM/YYYY or MM/DD/YYYY"
	FormatISO       = "YYYY-MM-DD"
)

var (
	monthNameDateRe = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),?\s+(\d{4})\b`)
	slashDateRe     = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
	isoDateRe       = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	dollarAmountRe  = regexp.MustCompile(`\$\s?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\b`)
	wordDollarRe    = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s+(?:dollars?|USD)\b`)
	otherCurrencyRe = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s+(EUR|GBP|INR|\x{20B9}|\x{20AC}|\x{A3})\b`)
)

// extractDates pools three independently recognized date formats.
func (e *Extractor) extractDates(text string) []model.DateEntity {
	var dates []model.DateEntity

	appendMatches := func(re *regexp.Regexp, format string) {
		for _, m := range re.FindAllStringIndex(text, -1) {
			dates = append(dates, model.DateEntity{
				Date:    text[m[0]:m[1]],
				Format:  format,
				Context: contextAround(text, m[0], m[1]),
			})
		}
	}

	appendMatches(monthNameDateRe, FormatMonthName)
	appendMatches(slashDateRe, FormatSlash)
	appendMatches(isoDateRe, FormatISO)

	if len(dates) > maxDates {
		dates = dates[:maxDates]
	}
	return dates
}

// extractMonetaryValues recognizes dollar-sign amounts, written-out
// dollar/USD amounts, and other currency codes and symbols. Value holds
// the comma-stripped numeric string; Amount keeps the matched text.
func (e *Extractor) extractMonetaryValues(text string) []model.MonetaryEntity {
	var amounts []model.MonetaryEntity

	appendMatches := func(re *regexp.Regexp, currencyGroup int) {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			matched := text[m[0]:m[1]]
			value := strings.ReplaceAll(text[m[2]:m[3]], ",", "")
			currency := "USD"
			if currencyGroup > 0 {
				currency = text[m[2*currencyGroup]:m[2*currencyGroup+1]]
			}
			amounts = append(amounts, model.MonetaryEntity{
				Amount:   matched,
				Value:    value,
				Currency: currency,
				Context:  contextAround(text, m[0], m[1]),
			})
		}
	}

	appendMatches(dollarAmountRe, 0)
	appendMatches(wordDollarRe, 0)
	appendMatches(otherCurrencyRe, 2)

	if len(amounts) > maxMonetary {
		amounts = amounts[:maxMonetary]
	}
	return amounts
}

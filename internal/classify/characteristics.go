package classify

import (
	"regexp"
	"strings"

	"github.com/lexsift/lexsift/internal/model"
)

var (
	moneyishRe = regexp.MustCompile(`\$|\d+(?:,\d{3})*(?:\.\d{2})?`)
	dateishRe  = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|january|february|march|april|may|june|july|august|september|october|november|december`)
)

// jargonMarkers are the formality signals counted for the formality
// estimate.
var jargonMarkers = []string{"whereas", "hereby", "hereinafter", "notwithstanding", "pursuant"}

// Characteristics derives auxiliary signals about the document. They are
// informational and never gate classification.
func Characteristics(text string) model.Characteristics {
	lower := strings.ToLower(text)

	ch := model.Characteristics{
		EstimatedFormality: model.FormalityMedium,
	}

	ch.HasParties = containsAny(lower, "between", "party", "parties", "hereinafter")
	ch.HasMonetaryTerms = moneyishRe.MatchString(text) || strings.Contains(lower, "payment")
	ch.HasDates = dateishRe.MatchString(lower)
	ch.HasSignatures = containsAny(lower, "signature", "signed", "executed", "witness")

	jargonCount := 0
	for _, marker := range jargonMarkers {
		if strings.Contains(lower, marker) {
			jargonCount++
		}
	}
	ch.HasLegalJargon = jargonCount >= 2

	switch {
	case jargonCount >= 4:
		ch.EstimatedFormality = model.FormalityHigh
	case jargonCount <= 1:
		ch.EstimatedFormality = model.FormalityLow
	}

	return ch
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

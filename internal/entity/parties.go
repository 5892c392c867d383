package entity

import (
	"regexp"
	"strings"

	"github.com/lexsift/lexsift/internal/model"
)

// Name length guards: longer matches are treated as false positives.
const (
	maxBetweenNameLen = 50
	maxPartyNameLen   = 100
)

var (
	// "between Acme Corp. and Beta LLC" yields two parties.
	betweenRe = regexp.MustCompile(`(?i)between\s+([A-Z][A-Za-z\s&,\.]+?)\s+(?:and|&)\s+([A-Z][A-Za-z\s&,\.]+?)(?:\s+|,|\.|\()`)

	// "Acme Corporation, hereinafter referred to as 'Acme'" yields a party
	// with an alias.
	referredRe = regexp.MustCompile(`(?i)([A-Z][A-Za-z\s&,\.]+?)\s+[\("]?hereinafter\s+referred\s+to\s+as\s+["']?([A-Z][A-Za-z\s]+?)["']?[\)"]?`)

	// Organization suffixes catch parties the first two patterns miss.
	orgRe = regexp.MustCompile(`\b([A-Z][A-Za-z\s&]+?(?:Inc\.|LLC|Ltd\.|Corp\.|Corporation|Limited|Company))\b`)
)

// extractParties recognizes contracting parties via three overlapping
// patterns. Organization matches are skipped when the name was already
// captured by an earlier pattern.
func (e *Extractor) extractParties(text string) []model.PartyEntity {
	var parties []model.PartyEntity

	for _, m := range betweenRe.FindAllStringSubmatch(text, -1) {
		party1 := strings.TrimSpace(m[1])
		party2 := strings.TrimSpace(m[2])
		if len(party1) < maxBetweenNameLen && len(party2) < maxBetweenNameLen {
			parties = append(parties,
				model.PartyEntity{Name: party1, Role: "Party 1", Context: m[0]},
				model.PartyEntity{Name: party2, Role: "Party 2", Context: m[0]},
			)
		}
	}

	for _, m := range referredRe.FindAllStringSubmatch(text, -1) {
		fullName := strings.TrimSpace(m[1])
		shortName := strings.TrimSpace(m[2])
		if len(fullName) < maxPartyNameLen {
			parties = append(parties, model.PartyEntity{
				Name:    fullName,
				Alias:   shortName,
				Role:    "Party",
				Context: m[0],
			})
		}
	}

	for _, m := range orgRe.FindAllStringSubmatch(text, -1) {
		orgName := strings.TrimSpace(m[1])
		if len(orgName) < maxPartyNameLen && !containsName(parties, orgName) {
			parties = append(parties, model.PartyEntity{
				Name:    orgName,
				Role:    "Organization",
				Context: m[0],
			})
		}
	}

	if len(parties) > maxParties {
		parties = parties[:maxParties]
	}
	return parties
}

func containsName(parties []model.PartyEntity, name string) bool {
	for _, p := range parties {
		if p.Name == name {
			return true
		}
	}
	return false
}

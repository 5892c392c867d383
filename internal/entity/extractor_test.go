package entity

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractPartiesBetween(t *testing.T) {
	text := "This Agreement is entered into between Acme Corporation and BetaCorp, effective today."

	e := NewExtractor()
	parties := e.extractParties(text)

	if len(parties) < 2 {
		t.Fatalf("expected at least 2 parties, got %d", len(parties))
	}
	if parties[0].Name != "Acme Corporation" || parties[0].Role != "Party 1" {
		t.Errorf("unexpected first party: %+v", parties[0])
	}
	if parties[1].Name != "BetaCorp" || parties[1].Role != "Party 2" {
		t.Errorf("unexpected second party: %+v", parties[1])
	}
}

func TestExtractPartiesAlias(t *testing.T) {
	text := `Global Services Inc. hereinafter referred to as "Provider" agrees to the terms below.`

	e := NewExtractor()
	parties := e.extractParties(text)

	found := false
	for _, p := range parties {
		if p.Role == "Party" {
			found = true
			if p.Name != "Global Services Inc." {
				t.Errorf("expected full name captured, got %q", p.Name)
			}
			if p.Alias == "" {
				t.Error("expected a non-empty alias")
			}
		}
	}
	if !found {
		t.Errorf("expected an alias party, got %+v", parties)
	}
}

func TestExtractPartiesOrgSuffix(t *testing.T) {
	text := "please send notices to Widget Works LLC at the address above."

	e := NewExtractor()
	parties := e.extractParties(text)

	if len(parties) != 1 {
		t.Fatalf("expected 1 party, got %d", len(parties))
	}
	if parties[0].Name != "Widget Works LLC" || parties[0].Role != "Organization" {
		t.Errorf("unexpected party: %+v", parties[0])
	}
}

func TestExtractDates(t *testing.T) {
	text := "Signed on January 15, 2025. The term ends 12/31/2026 and renews 2027-01-01."

	e := NewExtractor()
	dates := e.extractDates(text)

	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	if dates[0].Date != "January 15, 2025" || dates[0].Format != FormatMonthName {
		t.Errorf("unexpected first date: %+v", dates[0])
	}
	if dates[1].Date != "12/31/2026" || dates[1].Format != FormatSlash {
		t.Errorf("unexpected second date: %+v", dates[1])
	}
	if dates[2].Date != "2027-01-01" || dates[2].Format != FormatISO {
		t.Errorf("unexpected third date: %+v", dates[2])
	}
}

func TestExtractMonetaryValues(t *testing.T) {
	text := "Client shall pay $50,000.00 on signing and 2,500 dollars monthly, plus 1,000 EUR in expenses."

	e := NewExtractor()
	amounts := e.extractMonetaryValues(text)

	if len(amounts) != 3 {
		t.Fatalf("expected 3 amounts, got %d", len(amounts))
	}
	if amounts[0].Value != "50000.00" || amounts[0].Currency != "USD" {
		t.Errorf("unexpected dollar amount: %+v", amounts[0])
	}
	if amounts[1].Value != "2500" || amounts[1].Currency != "USD" {
		t.Errorf("unexpected written-out amount: %+v", amounts[1])
	}
	if amounts[2].Value != "1000" || amounts[2].Currency != "EUR" {
		t.Errorf("unexpected other-currency amount: %+v", amounts[2])
	}
}

func TestExtractObligations(t *testing.T) {
	text := "The Provider shall deliver the services on time. The Client agrees to pay promptly. The sky is blue."

	e := NewExtractor()
	obligations := e.extractObligations(text)

	if len(obligations) != 2 {
		t.Fatalf("expected 2 obligations, got %d", len(obligations))
	}
	if obligations[0].Keyword != "shall" {
		t.Errorf("expected keyword shall, got %q", obligations[0].Keyword)
	}
	if obligations[1].Keyword != "agrees to" {
		t.Errorf("expected keyword \"agrees to\", got %q", obligations[1].Keyword)
	}
}

func TestExtractLegalTermsOrdering(t *testing.T) {
	text := "This agreement covers liability. The agreement survives termination. No other agreement applies."

	e := NewExtractor()
	terms := e.extractLegalTerms(text)

	if len(terms) == 0 {
		t.Fatal("expected legal terms")
	}
	if terms[0].Term != "agreement" || terms[0].Count != 3 {
		t.Errorf("expected agreement with count 3 first, got %+v", terms[0])
	}
	for i := 1; i < len(terms); i++ {
		if terms[i].Count > terms[i-1].Count {
			t.Errorf("terms not sorted by count: %+v before %+v", terms[i-1], terms[i])
		}
	}
}

func TestExtractContactInfo(t *testing.T) {
	text := "Notices: legal@acme.example or call 555-123-4567 during business hours."

	e := NewExtractor()
	contacts := e.extractContactInfo(text)

	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].Type != "email" || contacts[0].Value != "legal@acme.example" {
		t.Errorf("unexpected email contact: %+v", contacts[0])
	}
	if contacts[1].Type != "phone" {
		t.Errorf("expected phone contact, got %+v", contacts[1])
	}
}

func TestContextAround(t *testing.T) {
	text := strings.Repeat("a", 100) + "MATCH" + strings.Repeat("b", 100)

	ctx := contextAround(text, 100, 105)

	if !strings.HasPrefix(ctx, "...") || !strings.HasSuffix(ctx, "...") {
		t.Errorf("expected ellipsis markers on both sides, got %q", ctx)
	}
	if !strings.Contains(ctx, "MATCH") {
		t.Errorf("expected the match inside the context, got %q", ctx)
	}

	short := contextAround("MATCH here", 0, 5)
	if strings.HasPrefix(short, "...") {
		t.Errorf("expected no leading ellipsis at document start, got %q", short)
	}
}

func TestContextAroundMultibyte(t *testing.T) {
	// Window edges land inside multibyte runes here; the context must still
	// be valid UTF-8.
	text := "x" + strings.Repeat("漢", 30) + "TARGET" + strings.Repeat("漢", 30)
	start := strings.Index(text, "TARGET")

	ctx := contextAround(text, start, start+len("TARGET"))

	if !utf8.ValidString(ctx) {
		t.Errorf("context splits a multibyte rune: %q", ctx)
	}
	if !strings.Contains(ctx, "TARGET") {
		t.Errorf("match text missing from context: %q", ctx)
	}
	if !strings.HasPrefix(ctx, "...") || !strings.HasSuffix(ctx, "...") {
		t.Errorf("expected ellipses on both sides, got %q", ctx)
	}
}

func TestExtractAllCategories(t *testing.T) {
	text := "This Agreement is entered into between Acme Corporation and Beta Industries, " +
		"effective January 15, 2025. Client shall pay $10,000 upon signing. " +
		"Contact legal@acme.example with questions."

	e := NewExtractor()
	set := e.Extract(text)

	summary := set.Summary()
	if summary.Parties == 0 || summary.Dates == 0 || summary.MonetaryValues == 0 ||
		summary.Obligations == 0 || summary.LegalTerms == 0 || summary.ContactInfo == 0 {
		t.Errorf("expected every category populated, got %+v", summary)
	}
}

package clause

import (
	"strings"
	"testing"

	"github.com/lexsift/lexsift/internal/model"
)

func TestExtractNumberedClauses(t *testing.T) {
	text := "1. Confidentiality. The Receiving Party shall keep all Confidential Information strictly confidential.\n" +
		"2. Payment. Client shall pay Provider a fee of $5,000 within thirty days of invoice."

	s := NewSegmenter()
	clauses := s.Extract(text)

	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}

	if clauses[0].Locator != "1." {
		t.Errorf("expected locator \"1.\", got %q", clauses[0].Locator)
	}
	if clauses[0].Type != "Confidentiality" {
		t.Errorf("expected type Confidentiality, got %q", clauses[0].Type)
	}
	if clauses[1].Locator != "2." {
		t.Errorf("expected locator \"2.\", got %q", clauses[1].Locator)
	}
	if clauses[1].Type != "Payment" {
		t.Errorf("expected type Payment, got %q", clauses[1].Type)
	}
}

func TestExtractNumberedMultilineBody(t *testing.T) {
	text := "1.1. Scope of Services. Provider shall perform the services\n" +
		"described in Exhibit A with reasonable skill and care.\n" +
		"1.2. Changes. Any change to the services requires written agreement\nof both parties."

	s := NewSegmenter()
	clauses := s.Extract(text)

	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}
	if clauses[0].Locator != "1.1." {
		t.Errorf("expected locator \"1.1.\", got %q", clauses[0].Locator)
	}
	if !strings.Contains(clauses[0].Content, "Exhibit A") {
		t.Errorf("continuation line not joined into clause body: %q", clauses[0].Content)
	}
}

func TestExtractNumberedSkipsShortClauses(t *testing.T) {
	text := "1. Too short.\n2. This clause is comfortably longer than the minimum content length."

	s := NewSegmenter()
	clauses := s.Extract(text)

	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Locator != "2." {
		t.Errorf("expected the short clause to be dropped, got locator %q", clauses[0].Locator)
	}
}

func TestExtractSections(t *testing.T) {
	text := "ARTICLE IV - CONFIDENTIALITY\n" +
		"Each party agrees to hold the other party's proprietary information in strict confidence at all times.\n" +
		"SECTION 5 - GOVERNING LAW\n" +
		"This Agreement shall be governed by the laws of the State of Delaware without regard to conflicts rules.\n"

	s := NewSegmenter()
	clauses := s.extractSections(text)

	if len(clauses) != 2 {
		t.Fatalf("expected 2 section clauses, got %d", len(clauses))
	}
	if clauses[0].Locator != "CONFIDENTIALITY" {
		t.Errorf("expected section title locator, got %q", clauses[0].Locator)
	}
	if clauses[0].Type != "Confidentiality" {
		t.Errorf("expected type Confidentiality, got %q", clauses[0].Type)
	}
	if clauses[1].Type != "Governing Law" {
		t.Errorf("expected type Governing Law, got %q", clauses[1].Type)
	}
}

func TestExtractParagraphFallback(t *testing.T) {
	long := strings.Repeat("The parties agree to cooperate in good faith. ", 5)
	text := "short intro\n\n" + long + "\n\n" + long

	s := NewSegmenter()
	clauses := s.Extract(text)

	if len(clauses) == 0 {
		t.Fatal("expected paragraph fallback to produce clauses")
	}
	for _, c := range clauses {
		if !strings.HasPrefix(c.Locator, "P") {
			t.Errorf("expected synthetic P locator, got %q", c.Locator)
		}
	}
}

func TestParagraphLocatorsKeepPosition(t *testing.T) {
	long := strings.Repeat("Both parties shall maintain complete and accurate records. ", 4)
	// First paragraph is too short and gets skipped; the long one is second.
	text := "short\n\n" + long

	s := NewSegmenter()
	clauses := s.extractParagraphs(text)

	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Locator != "P2" {
		t.Errorf("expected locator P2 for the second paragraph, got %q", clauses[0].Locator)
	}
}

func TestParagraphCap(t *testing.T) {
	para := strings.Repeat("Each party shall comply with all applicable laws and regulations. ", 3)
	var parts []string
	for i := 0; i < 30; i++ {
		parts = append(parts, para)
	}
	text := strings.Join(parts, "\n\n")

	s := NewSegmenter()
	clauses := s.extractParagraphs(text)

	if len(clauses) != maxParagraphs {
		t.Errorf("expected output capped at %d, got %d", maxParagraphs, len(clauses))
	}
}

func TestStrategiesAreExclusive(t *testing.T) {
	var ran []string
	s := &Segmenter{}
	s.strategies = []strategy{
		{name: "first", run: func(text string) []model.Clause {
			ran = append(ran, "first")
			return []model.Clause{{Locator: "1.", Content: "x"}}
		}},
		{name: "second", run: func(text string) []model.Clause {
			ran = append(ran, "second")
			return nil
		}},
	}

	clauses := s.Extract("anything")

	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause from first strategy, got %d", len(clauses))
	}
	if len(ran) != 1 || ran[0] != "first" {
		t.Errorf("expected only the first strategy to run, ran %v", ran)
	}
}

func TestExtractEmptyWhenNothingMatches(t *testing.T) {
	s := NewSegmenter()
	if clauses := s.Extract("too short"); len(clauses) != 0 {
		t.Errorf("expected no clauses for unsegmentable text, got %d", len(clauses))
	}
}

func TestClauseWordCount(t *testing.T) {
	text := "1. The quick brown fox jumps over the lazy dog near the riverbank today."

	s := NewSegmenter()
	clauses := s.Extract(text)

	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	want := len(strings.Fields(clauses[0].Content))
	if clauses[0].WordCount != want {
		t.Errorf("expected word count %d, got %d", want, clauses[0].WordCount)
	}
}

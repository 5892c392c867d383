package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexsift/lexsift/internal/model"
)

const ndaDoc = `NON-DISCLOSURE AGREEMENT

This Non-Disclosure Agreement is entered into on January 15, 2024 between Acme Corporation and BetaCorp.

1. Confidential Information. The Receiving Party shall hold all proprietary information and trade secret material of the Disclosing Party in strict confidence and shall not disclose it to any third party.

2. Payment. The Client agrees to pay the sum of $5,000.00 within thirty days of the effective date.

IN WITNESS WHEREOF, the parties have executed this Agreement as of the date first written above.`

func TestAnalyzeText(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	report, err := p.AnalyzeText(context.Background(), ndaDoc, "nda-sample")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Document.Filename != "nda-sample" {
		t.Errorf("Expected filename nda-sample, got %s", report.Document.Filename)
	}
	if report.Document.FileType != "text" {
		t.Errorf("Expected file type text, got %s", report.Document.FileType)
	}
	if report.AnalyzedAt.IsZero() {
		t.Error("Expected AnalyzedAt to be set")
	}

	if len(report.Clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(report.Clauses))
	}
	if report.Clauses[0].Locator != "1." || report.Clauses[1].Locator != "2." {
		t.Errorf("Unexpected locators: %s, %s", report.Clauses[0].Locator, report.Clauses[1].Locator)
	}
	if report.ClauseSummary.TotalClauses != 2 {
		t.Errorf("Expected clause summary total 2, got %d", report.ClauseSummary.TotalClauses)
	}

	if report.Classification.DocumentType != "Non-Disclosure Agreement (NDA)" {
		t.Errorf("Expected NDA classification, got %s", report.Classification.DocumentType)
	}
	if report.Classification.Method != model.MethodRuleBased {
		t.Errorf("Expected rule-based method, got %s", report.Classification.Method)
	}
	if report.Classification.Confidence <= 0 {
		t.Errorf("Expected positive confidence, got %f", report.Classification.Confidence)
	}
	if len(report.SimilarTypes) == 0 {
		t.Error("Expected similar type suggestions")
	}

	s := report.EntitySummary
	if s.Parties == 0 {
		t.Error("Expected parties to be extracted")
	}
	if s.Dates == 0 {
		t.Error("Expected dates to be extracted")
	}
	if s.MonetaryValues == 0 {
		t.Error("Expected monetary values to be extracted")
	}
	if s.Obligations == 0 {
		t.Error("Expected obligations to be extracted")
	}

	c := report.Characteristics
	if !c.HasParties || !c.HasMonetaryTerms || !c.HasDates || !c.HasSignatures {
		t.Errorf("Unexpected characteristics: %+v", c)
	}

	if report.Simplifications != nil {
		t.Errorf("Expected no simplifications when disabled, got %d", len(report.Simplifications))
	}
}

func TestAnalyzeTextEmpty(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	_, err := p.AnalyzeText(context.Background(), "   \n\n  ", "empty")
	if err == nil {
		t.Fatal("Expected error for empty text")
	}
	if !strings.Contains(err.Error(), "contains no text") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.txt")
	if err := os.WriteFile(path, []byte(ndaDoc), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	p := NewPipeline(model.DefaultConfig())
	report, err := p.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Document.Filename != "contract.txt" {
		t.Errorf("Expected filename contract.txt, got %s", report.Document.Filename)
	}
	if report.Document.FileType != ".txt" {
		t.Errorf("Expected file type .txt, got %s", report.Document.FileType)
	}
	if len(report.Clauses) != 2 {
		t.Errorf("Expected 2 clauses, got %d", len(report.Clauses))
	}
}

func TestAnalyzeFileUnsupported(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	_, err := p.AnalyzeFile(context.Background(), "notes.md")
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}
}

func TestAnalyzeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, `<html><head><title>NDA</title><script>var x = 1;</script></head>
<body>
<h1>NON-DISCLOSURE AGREEMENT</h1>
<p>This Non-Disclosure Agreement is entered into between Acme Corporation and BetaCorp. The Receiving Party shall hold all proprietary information and trade secret material of the Disclosing Party in strict confidence.</p>
</body></html>`)
	}))
	defer server.Close()

	cfg := model.DefaultConfig()
	cfg.HTTP.RespectRobots = false
	p := NewPipeline(cfg)

	report, err := p.AnalyzeURL(context.Background(), server.URL+"/contracts/mutual-nda.html")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Document.FileType != "url" {
		t.Errorf("Expected file type url, got %s", report.Document.FileType)
	}
	if report.Document.Filename != "mutual nda" {
		t.Errorf("Expected de-slugged filename, got %s", report.Document.Filename)
	}
	if strings.Contains(report.Document.Text, "var x") {
		t.Error("Expected script content to be stripped")
	}
	if report.Classification.DocumentType != "Non-Disclosure Agreement (NDA)" {
		t.Errorf("Expected NDA classification, got %s", report.Classification.DocumentType)
	}
}

func TestRenderReport(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())
	report, err := p.AnalyzeText(context.Background(), ndaDoc, "nda-sample")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")

	if err := p.RenderReport(report, jsonPath, mdPath); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, path := range []string{jsonPath, mdPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Expected output file %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("Expected non-empty file %s", path)
		}
	}
}

package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestProcessFileText(t *testing.T) {
	content := "This agreement covers confidential information. The parties shall comply."
	path := writeTempFile(t, "contract.txt", content)

	doc, err := ProcessFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Filename != "contract.txt" {
		t.Errorf("unexpected filename: %q", doc.Filename)
	}
	if doc.FileType != ".txt" {
		t.Errorf("unexpected file type: %q", doc.FileType)
	}
	if doc.Text != content {
		t.Errorf("unexpected text: %q", doc.Text)
	}
	if doc.Meta.WordCount != len(strings.Fields(content)) {
		t.Errorf("unexpected word count: %d", doc.Meta.WordCount)
	}
}

func TestProcessFileUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "image.png", "not a document")

	_, err := ProcessFile(path)
	if err == nil {
		t.Fatal("expected an error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported file format") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), ".pdf") {
		t.Errorf("expected supported formats named in error, got: %v", err)
	}
}

func TestProcessFileMissing(t *testing.T) {
	if _, err := ProcessFile("/nonexistent/contract.txt"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestProcessFileHTML(t *testing.T) {
	content := `<html><head><style>p { color: red }</style></head>
<body><p>The parties shall keep this agreement confidential.</p>
<script>alert("hidden")</script></body></html>`
	path := writeTempFile(t, "terms.html", content)

	doc, err := ProcessFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc.Text, "agreement confidential") {
		t.Errorf("expected visible text extracted, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "alert") || strings.Contains(doc.Text, "color") {
		t.Errorf("script/style content leaked into text: %q", doc.Text)
	}
}

func TestCleanText(t *testing.T) {
	in := "Some  text\twith   runs.\n\n\n\nPage 3 of 10\nMore “quoted” text and ‘single’ quotes."
	out := CleanText(in)

	if strings.Contains(out, "  ") {
		t.Errorf("horizontal whitespace not collapsed: %q", out)
	}
	if strings.Contains(out, "Page 3 of 10") {
		t.Errorf("page boilerplate not removed: %q", out)
	}
	if strings.Contains(out, "\n\n\n") {
		t.Errorf("newline runs not collapsed: %q", out)
	}
	if !strings.Contains(out, `"quoted"`) || !strings.Contains(out, "'single'") {
		t.Errorf("curly quotes not straightened: %q", out)
	}
}

func TestCleanTextPreservesParagraphBreaks(t *testing.T) {
	in := "First paragraph.\n\nSecond paragraph."
	out := CleanText(in)

	if !strings.Contains(out, "\n\n") {
		t.Errorf("paragraph break lost: %q", out)
	}
}

func TestMetadata(t *testing.T) {
	text := "The parties hereby agree. Breach leads to termination; liability is limited."

	meta := Metadata(text)

	if meta.WordCount != len(strings.Fields(text)) {
		t.Errorf("unexpected word count: %d", meta.WordCount)
	}
	if meta.CharCount != len(text) {
		t.Errorf("unexpected char count: %d", meta.CharCount)
	}
	if meta.EstimatedClauses != 2 {
		t.Errorf("expected 2 clause delimiters, got %d", meta.EstimatedClauses)
	}
	if meta.LegalDensity <= 0 {
		t.Errorf("expected positive legal density, got %.2f", meta.LegalDensity)
	}
}

func TestMetadataCountsRunes(t *testing.T) {
	text := "naïve café"

	meta := Metadata(text)

	if meta.CharCount != 10 {
		t.Errorf("expected 10 characters, got %d", meta.CharCount)
	}
	if meta.FileSize != len(text) {
		t.Errorf("expected file size in bytes, got %d", meta.FileSize)
	}
}

func TestChunkText(t *testing.T) {
	sentence := "Each party shall comply with all terms. "
	text := strings.Repeat(sentence, 100)

	chunks := ChunkText(text, 500, 50)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 500 {
			t.Errorf("chunk %d exceeds size: %d", i, len(chunk))
		}
	}
	if ChunkText("", 500, 50) != nil {
		t.Error("expected nil for empty text")
	}

	short := ChunkText("tiny", 500, 50)
	if len(short) != 1 || short[0] != "tiny" {
		t.Errorf("expected single chunk for short text, got %v", short)
	}
}

func TestChunkTextEarlySentenceBoundary(t *testing.T) {
	// A sentence boundary right at the start makes the first chunk shorter
	// than the overlap; chunking must still move forward.
	text := "A." + strings.Repeat("x", 2000)

	chunks := ChunkText(text, 1000, 100)

	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	if chunks[0] != "A." {
		t.Errorf("expected the short sentence as its own chunk, got %q", chunks[0])
	}
	for i, chunk := range chunks {
		if len(chunk) > 1000 {
			t.Errorf("chunk %d exceeds size: %d", i, len(chunk))
		}
	}
}

func TestExtractVisibleTextBlocks(t *testing.T) {
	text, err := ExtractVisibleText("<div><h1>Title</h1><p>First.</p><p>Second.</p></div>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 3 {
		t.Errorf("expected block elements on separate lines, got %q", text)
	}
}

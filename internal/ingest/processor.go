// Package ingest turns document files and web pages into cleaned plain
// text plus cheap derived metadata. Analysis components never see file
// formats; they consume the extracted text only.
package ingest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lexsift/lexsift/internal/model"
)

// SupportedExtensions lists the file formats this package can extract.
var SupportedExtensions = []string{".pdf", ".docx", ".txt", ".html"}

// legalVocabulary is the fixed term list behind the keyword-density
// metric.
var legalVocabulary = []string{
	"whereas", "hereby", "hereunder", "hereinafter",
	"notwithstanding", "pursuant", "covenant", "indemnify",
	"liability", "breach", "termination", "confidential",
}

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t]+`)
	pageOfPageRe      = regexp.MustCompile(`(?i)Page\s+\d+\s+of\s+\d+`)
	pageNumberRe      = regexp.MustCompile(`(?i)\bPage\s+\d+\b`)
	tripleNewlineRe   = regexp.MustCompile(`\n\s*\n\s*\n+`)
	clauseDelimiterRe = regexp.MustCompile(`[.;]\s+`)
)

// ProcessFile extracts text from a document file and derives metadata.
// Unsupported extensions fail fast with an error naming the accepted set.
func ProcessFile(path string) (*model.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	case ".txt":
		text, err = extractText(path)
	case ".html", ".htm":
		text, err = extractHTMLFile(path)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: %s)",
			ext, strings.Join(SupportedExtensions, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", ext, err)
	}

	cleaned := CleanText(text)

	return &model.Document{
		Text:     cleaned,
		Filename: filepath.Base(path),
		FileType: ext,
		Meta:     Metadata(cleaned),
	}, nil
}

// CleanText normalizes extracted text: horizontal whitespace runs collapse
// to one space, "Page N of M" boilerplate is stripped, triple-plus
// newlines collapse to double, and curly quotes become straight quotes.
func CleanText(text string) string {
	text = horizontalSpaceRe.ReplaceAllString(text, " ")
	text = pageOfPageRe.ReplaceAllString(text, "")
	text = pageNumberRe.ReplaceAllString(text, "")
	text = tripleNewlineRe.ReplaceAllString(text, "\n\n")

	replacer := strings.NewReplacer(
		"“", `"`, "”", `"`,
		"‘", "'", "’", "'",
	)
	text = replacer.Replace(text)

	return strings.TrimSpace(text)
}

// Metadata derives document statistics from cleaned text. Estimated
// clause count is the number of ". " / "; " delimiters; keyword density
// is the percentage of the legal vocabulary present at least once.
func Metadata(text string) model.DocumentMeta {
	lower := strings.ToLower(text)

	present := 0
	for _, keyword := range legalVocabulary {
		if strings.Contains(lower, keyword) {
			present++
		}
	}

	return model.DocumentMeta{
		WordCount:        len(strings.Fields(text)),
		CharCount:        utf8.RuneCountInString(text),
		EstimatedClauses: len(clauseDelimiterRe.FindAllStringIndex(text, -1)),
		LegalDensity:     model.Round2(float64(present) / float64(len(legalVocabulary)) * 100),
		FileSize:         len(text),
	}
}

// ChunkText splits text into overlapping chunks, backing off to the last
// sentence boundary inside each chunk when one exists.
func ChunkText(text string, chunkSize, overlap int) []string {
	if text == "" {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = chunkSize / 10
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + chunkSize
		if end < len(text) {
			if idx := strings.LastIndex(text[start:end], "."); idx > 0 {
				end = start + idx + 1
			}
		} else {
			end = len(text)
		}

		chunks = append(chunks, strings.TrimSpace(text[start:end]))
		if end == len(text) {
			break
		}
		// An early sentence boundary can leave a chunk shorter than the
		// overlap; continue from the chunk end instead of rewinding past
		// its start.
		if next := end - overlap; next > start {
			start = next
		} else {
			start = end
		}
	}

	return chunks
}

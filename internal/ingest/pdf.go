package ingest

import (
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// extractPDF extracts plain text from a PDF file, page by page. Pages
// that fail to decode are skipped rather than failing the whole document.
func extractPDF(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(text)
	}

	return buf.String(), nil
}

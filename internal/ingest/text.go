package ingest

import (
	"os"
	"strings"
	"unicode/utf8"
)

// extractText reads a plain text file. Bytes that are not valid UTF-8 are
// decoded as Latin-1, which never fails, so a text file always yields a
// usable string.
func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	return decodeLatin1(data), nil
}

func decodeLatin1(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}

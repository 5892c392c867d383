package clause

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lexsift/lexsift/internal/model"
)

// Minimum content lengths per strategy and the fallback output cap.
const (
	minNumberedLen  = 20
	minSectionLen   = 50
	minParagraphLen = 100
	maxParagraphs   = 20
)

// Segmenter splits raw document text into ordered clause records. Three
// strategies are tried in order and the first one that yields any clauses
// wins; the later strategies never run.
type Segmenter struct {
	strategies []strategy
}

// strategy is one segmentation approach in the cascade.
type strategy struct {
	name string
	run  func(text string) []model.Clause
}

// NewSegmenter creates a segmenter with the default strategy chain:
// numbered clauses, then section headers, then paragraph fallback.
func NewSegmenter() *Segmenter {
	s := &Segmenter{}
	s.strategies = []strategy{
		{name: "numbered", run: s.extractNumbered},
		{name: "sections", run: s.extractSections},
		{name: "paragraphs", run: s.extractParagraphs},
	}
	return s
}

// Extract segments document text into clauses. Returns an empty slice when
// no strategy finds anything; that is not an error.
func (s *Segmenter) Extract(text string) []model.Clause {
	for _, st := range s.strategies {
		if clauses := st.run(text); len(clauses) > 0 {
			return clauses
		}
	}
	return nil
}

var (
	// Lines beginning with a numeric label: "1.", "2.", "1.1.", "3.2.1." ...
	numberedLabelRe = regexp.MustCompile(`^\s*(\d+\.(?:\d+\.)*)\s+(.+)$`)
	// A continuation line that itself starts a new numbered clause.
	numberedStartRe = regexp.MustCompile(`^\s*\d+\.`)

	// Section headers: "ARTICLE IV - TITLE", "SECTION 2: TITLE", "3. TITLE"
	sectionHeaderRe = regexp.MustCompile(`(?i)(?:^|\n)\s*(?:ARTICLE\s+[IVX\d]+|SECTION\s+\d+|\d+\.)\s*[-\x{2013}\x{2014}]?\s*([A-Za-z\s]+)(?:\n|\r)`)

	// Paragraph boundaries: blank line, or sentence end followed by newline.
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n|\.\s*\n`)
)

// extractNumbered finds clauses introduced by a numeric label. The body
// runs until the next labeled line or an empty line.
func (s *Segmenter) extractNumbered(text string) []model.Clause {
	var clauses []model.Clause

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		m := numberedLabelRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}

		body := []string{m[2]}
		j := i + 1
		for j < len(lines) {
			line := lines[j]
			if line == "" || numberedStartRe.MatchString(line) {
				break
			}
			body = append(body, line)
			j++
		}
		i = j - 1

		content := strings.TrimSpace(strings.Join(body, "\n"))
		if len(content) > minNumberedLen {
			clauses = append(clauses, newClause(m[1], content))
		}
	}

	return clauses
}

// extractSections finds "ARTICLE ..." / "SECTION ..." headers and treats
// the text between consecutive headers as one clause. The header title is
// included when labeling the clause type.
func (s *Segmenter) extractSections(text string) []model.Clause {
	matches := sectionHeaderRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var clauses []model.Clause
	for i, m := range matches {
		title := strings.TrimSpace(text[m[2]:m[3]])
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		content := strings.TrimSpace(text[start:end])
		if len(content) > minSectionLen {
			c := newClause(title, content)
			c.Type = ClassifyType(title + " " + content)
			clauses = append(clauses, c)
		}
	}

	return clauses
}

// extractParagraphs is the last-resort strategy: split on paragraph
// boundaries, keep substantial paragraphs, cap the output. Synthetic
// locators keep the original paragraph position, so they may be
// non-contiguous when short paragraphs are skipped.
func (s *Segmenter) extractParagraphs(text string) []model.Clause {
	var clauses []model.Clause

	for i, para := range paragraphSplitRe.Split(text, -1) {
		para = strings.TrimSpace(para)
		if len(para) <= minParagraphLen {
			continue
		}
		clauses = append(clauses, newClause("P"+strconv.Itoa(i+1), para))
		if len(clauses) == maxParagraphs {
			break
		}
	}

	return clauses
}

func newClause(locator, content string) model.Clause {
	return model.Clause{
		Locator:   locator,
		Content:   content,
		Type:      ClassifyType(content),
		WordCount: len(strings.Fields(content)),
	}
}


package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"gridmark/internal/model"

	"github.com/nguyenthenguyen/docx"
)

// DocumentExtractor handles the Word path. It is a thin wrapper around
// the third-party docx library: paragraphs come out as narrative
// markdown and no table reconstruction is attempted.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a Word document extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

var (
	paragraphPattern = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>|<w:p/>`)
	textRunPattern   = regexp.MustCompile(`(?s)<w:t(?: [^>]*)?>(.*?)</w:t>`)
)

// Extract reads the document body and returns a single result whose
// narrative text holds one line per paragraph. Empty paragraphs are
// dropped.
func (e *DocumentExtractor) Extract(path string) ([]model.RenderResult, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("document extraction failed: %w", err)
	}
	defer r.Close()

	paragraphs := ParseParagraphs(r.Editable().GetContent())

	result := model.RenderResult{
		Sheet:           "Document",
		NarrativeBefore: strings.Join(paragraphs, "\n\n"),
	}
	result.Stats.CharsBefore = len(result.NarrativeBefore)
	result.Stats.CharsAfter = result.Stats.CharsBefore

	return []model.RenderResult{result}, nil
}

// ParseParagraphs pulls the visible text out of WordprocessingML body
// content: one string per paragraph, text runs concatenated, XML
// entities decoded.
func ParseParagraphs(content string) []string {
	var paragraphs []string
	for _, para := range paragraphPattern.FindAllString(content, -1) {
		var sb strings.Builder
		for _, run := range textRunPattern.FindAllStringSubmatch(para, -1) {
			sb.WriteString(unescapeXML(run[1]))
		}
		text := strings.TrimSpace(sb.String())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

func unescapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
	return replacer.Replace(s)
}

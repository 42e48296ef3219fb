// Package exporter assembles per-sheet render results into the final
// markdown document and writes it to disk. It is the only place in the
// program that performs output file I/O.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gridmark/internal/model"
)

// MarkdownExporter writes the concatenated sheet results as one
// markdown file.
type MarkdownExporter struct{}

// NewMarkdownExporter creates a markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Export builds the document and writes it to outPath, creating parent
// directories as needed. Returns the document content for previewing.
func (e *MarkdownExporter) Export(results []model.RenderResult, outPath string) (string, error) {
	content := BuildDocument(results)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown output: %w", err)
	}

	return content, nil
}

// BuildDocument concatenates sheet results in order. Sheets get a
// "## name" heading only when the source had more than one, matching
// how single-sheet workbooks are usually read as one document. Within a
// sheet the order is narrative before, table (with its merge list),
// narrative after.
func BuildDocument(results []model.RenderResult) string {
	var parts []string

	for _, res := range results {
		var section []string

		if len(results) > 1 {
			section = append(section, "## "+res.Sheet)
		}
		if res.NarrativeBefore != "" {
			section = append(section, res.NarrativeBefore)
		}
		if res.MarkdownTable != "" {
			section = append(section, res.MarkdownTable)
		}
		if res.NarrativeAfter != "" {
			section = append(section, res.NarrativeAfter)
		}

		if len(section) > 0 {
			parts = append(parts, strings.Join(section, "\n\n"))
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// SumStats totals the per-sheet counters for the end-of-run summary.
func SumStats(results []model.RenderResult) model.Stats {
	var total model.Stats
	for _, res := range results {
		total.Add(res.Stats)
	}
	return total
}

package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridmark/internal/model"
)

func TestBuildDocumentSingleSheet(t *testing.T) {
	results := []model.RenderResult{
		{
			Sheet:           "Sheet1",
			NarrativeBefore: "Quarterly Report",
			MarkdownTable:   "| Date | Amount |\n| --- | --- |\n| 2024-01-02 | 1200 |",
			NarrativeAfter:  "Figures unaudited",
		},
	}

	got := BuildDocument(results)

	if strings.Contains(got, "## Sheet1") {
		t.Errorf("single sheet should not get a heading:\n%s", got)
	}
	wantOrder := []string{"Quarterly Report", "| Date | Amount |", "Figures unaudited"}
	last := -1
	for _, part := range wantOrder {
		idx := strings.Index(got, part)
		if idx < 0 {
			t.Fatalf("missing %q in document:\n%s", part, got)
		}
		if idx < last {
			t.Errorf("%q out of order:\n%s", part, got)
		}
		last = idx
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("document should end with a newline")
	}
}

func TestBuildDocumentMultiSheet(t *testing.T) {
	results := []model.RenderResult{
		{Sheet: "Revenue", MarkdownTable: "| a |\n| --- |\n| 1 |"},
		{Sheet: "Costs", MarkdownTable: "| b |\n| --- |\n| 2 |"},
	}

	got := BuildDocument(results)

	if !strings.Contains(got, "## Revenue") || !strings.Contains(got, "## Costs") {
		t.Errorf("multi-sheet document should carry headings:\n%s", got)
	}
	if strings.Index(got, "## Revenue") > strings.Index(got, "## Costs") {
		t.Errorf("sheets out of order:\n%s", got)
	}
}

func TestBuildDocumentSkipsEmptySheets(t *testing.T) {
	results := []model.RenderResult{
		{Sheet: "Data", MarkdownTable: "| a |\n| --- |\n| 1 |"},
		{Sheet: "Blank"},
	}

	got := BuildDocument(results)

	if strings.Contains(got, "Blank") {
		t.Errorf("empty sheet should contribute nothing:\n%s", got)
	}
}

func TestBuildDocumentAllEmpty(t *testing.T) {
	if got := BuildDocument([]model.RenderResult{{Sheet: "S1"}, {Sheet: "S2"}}); got != "" {
		t.Errorf("expected empty document, got %q", got)
	}
	if got := BuildDocument(nil); got != "" {
		t.Errorf("expected empty document for no results, got %q", got)
	}
}

func TestExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "nested", "out.md")

	results := []model.RenderResult{
		{Sheet: "Sheet1", MarkdownTable: "| x |\n| --- |\n| 1 |"},
	}

	content, err := NewMarkdownExporter().Export(results, outPath)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(written) != content {
		t.Error("returned content differs from written file")
	}
	if !strings.Contains(content, "| x |") {
		t.Errorf("table missing from export:\n%s", content)
	}
}

func TestSumStats(t *testing.T) {
	results := []model.RenderResult{
		{Stats: model.Stats{DuplicatesRemoved: 2, MergedRegionsDetected: 1, CharsBefore: 100, CharsAfter: 80}},
		{Stats: model.Stats{DuplicatesRemoved: 3, MergedRegionsDetected: 4, CharsBefore: 50, CharsAfter: 50}},
	}

	total := SumStats(results)
	expected := model.Stats{DuplicatesRemoved: 5, MergedRegionsDetected: 5, CharsBefore: 150, CharsAfter: 130}
	if total != expected {
		t.Errorf("SumStats = %+v, expected %+v", total, expected)
	}
}

package engine

import (
	"strings"
	"testing"

	"gridmark/internal/model"
)

func TestRenderTableBasic(t *testing.T) {
	g := grid([][]string{
		{"Date", "Branch", "Amount"},
		{"2024-01-02", "Hanoi", "1200"},
		{"2024-01-03", "Hue", "900"},
	})
	block := model.DataBlock{StartRow: 0, EndRow: 2, Columns: []int{0, 1, 2}}

	got := RenderTable(g, block, nil, true)
	expected := strings.Join([]string{
		"| Date | Branch | Amount |",
		"| --- | --- | --- |",
		"| 2024-01-02 | Hanoi | 1200 |",
		"| 2024-01-03 | Hue | 900 |",
	}, "\n")

	if got != expected {
		t.Errorf("table mismatch:\ngot:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestRenderTableMergeList(t *testing.T) {
	g := grid([][]string{
		{"BANK X", "", ""},
		{"a", "b", "c"},
	})
	block := model.DataBlock{StartRow: 0, EndRow: 1, Columns: []int{0, 1, 2}}
	merges := []model.MergeRegion{{Top: 0, Left: 0, Bottom: 0, Right: 2}}

	got := RenderTable(g, block, merges, true)

	if !strings.HasPrefix(got, "**Merged Cell Regions:**\n- A1:C1\n") {
		t.Errorf("missing merge list header:\n%s", got)
	}
	if !strings.Contains(got, "| BANK X |") {
		t.Errorf("missing table after merge list:\n%s", got)
	}
}

func TestRenderTableMergeListCapped(t *testing.T) {
	var merges []model.MergeRegion
	for r := 0; r < 8; r++ {
		merges = append(merges, model.MergeRegion{Top: r, Left: 0, Bottom: r, Right: 1})
	}
	g := grid([][]string{{"a", "b"}})
	block := model.DataBlock{StartRow: 0, EndRow: 0, Columns: []int{0, 1}}

	got := RenderTable(g, block, merges, true)

	if bullets := strings.Count(got, "\n- "); bullets != maxMergeListEntries {
		t.Errorf("expected %d bullets, got %d:\n%s", maxMergeListEntries, bullets, got)
	}
}

func TestRenderTableMergeListSuppressed(t *testing.T) {
	g := grid([][]string{{"a", "b"}})
	block := model.DataBlock{StartRow: 0, EndRow: 0, Columns: []int{0, 1}}
	merges := []model.MergeRegion{{Top: 0, Left: 0, Bottom: 0, Right: 1}}

	got := RenderTable(g, block, merges, false)

	if strings.Contains(got, "Merged Cell Regions") {
		t.Errorf("merge list should be suppressed:\n%s", got)
	}
}

func TestRenderTableRespectsPrunedColumns(t *testing.T) {
	g := grid([][]string{
		{"Date", "", "Amount"},
		{"x", "", "1"},
	})
	block := model.DataBlock{StartRow: 0, EndRow: 1, Columns: []int{0, 2}}

	got := RenderTable(g, block, nil, true)

	if strings.Contains(got, "|  |") && !strings.Contains(got, "| Date | Amount |") {
		t.Errorf("pruned column leaked into output:\n%s", got)
	}
	if !strings.Contains(got, "| Date | Amount |") {
		t.Errorf("header should skip the pruned column:\n%s", got)
	}
}

func TestRenderTableEmptyBlock(t *testing.T) {
	g := grid([][]string{{"only", "narrative"}})

	if got := RenderTable(g, model.EmptyDataBlock(), nil, true); got != "" {
		t.Errorf("empty block should render nothing, got %q", got)
	}
}

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"Pipe", "a|b", "a\\|b"},
		{"Newline", "a\nb", "a<br/>b"},
		{"CRLF", "a\r\nb", "a<br/>b"},
		{"Plain", "plain", "plain"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeCell(tt.in); got != tt.expected {
				t.Errorf("escapeCell(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

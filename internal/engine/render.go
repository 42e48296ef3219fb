package engine

import (
	"strings"

	"gridmark/internal/model"
)

// maxMergeListEntries caps the traceability bullet list so sheets with
// hundreds of merges stay readable.
const maxMergeListEntries = 5

// RenderTable emits the pruned data block as a markdown pipe table. The
// first block row becomes the header, followed by a dash separator and
// the data rows. Empty cells render as empty table cells and column
// order follows the retained sequence without reordering.
//
// When includeMergeList is set and regions were detected, a bullet list
// of their A1-notation references precedes the table. The list is
// informational text only; nothing downstream re-parses it.
func RenderTable(g model.Grid, block model.DataBlock, merges []model.MergeRegion, includeMergeList bool) string {
	var sb strings.Builder

	if includeMergeList && len(merges) > 0 {
		sb.WriteString("**Merged Cell Regions:**\n")
		for i, region := range merges {
			if i >= maxMergeListEntries {
				break
			}
			sb.WriteString("- ")
			sb.WriteString(region.Ref())
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if block.Empty() || len(block.Columns) == 0 {
		return strings.TrimRight(sb.String(), "\n")
	}

	writeRow := func(r int) {
		sb.WriteString("|")
		for _, c := range block.Columns {
			sb.WriteString(" ")
			sb.WriteString(escapeCell(g.Rows[r][c]))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(block.StartRow)

	sb.WriteString("|")
	for range block.Columns {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for r := block.StartRow + 1; r <= block.EndRow && r < g.RowCount(); r++ {
		writeRow(r)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// escapeCell makes a cell value safe inside a pipe table: pipes are
// escaped and embedded newlines become <br/> so the row stays on one
// line.
func escapeCell(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	value = strings.ReplaceAll(value, "\n", "<br/>")
	return strings.ReplaceAll(value, "|", "\\|")
}

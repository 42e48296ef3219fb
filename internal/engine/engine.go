// Package engine implements the merged-cell-aware table reconstruction
// pipeline: it turns one raw worksheet grid into a clean, duplicate-free
// markdown rendering plus narrative text and cleanup statistics.
//
// Every stage treats its input grid as immutable and produces a new
// value, so sheets can be processed concurrently without locking.
package engine

import (
	"strings"

	"gridmark/internal/model"
)

// ProcessSheet runs the full pipeline over one grid:
//
//	merge resolution -> row classification -> duplicate collapsing ->
//	column pruning -> table rendering -> stats aggregation
//
// Row classification runs on the merge-resolved grid before collapsing
// so genuine title and footnote rows are already out of the data block
// when equal-value runs are cleared; the collapsor therefore never
// touches narrative text. Malformed merge metadata degrades to
// best-effort rendering recorded in the result's diagnostics; the
// function never fails.
func ProcessSheet(g model.Grid, opts Options) model.RenderResult {
	charsBefore := g.CharCount()

	canon, resolved, merges, diags := ResolveMerges(g)
	block, before, after := ExtractNarrative(resolved, opts)
	collapsed, removed := CollapseDuplicates(resolved, canon, block, opts)
	block = PruneColumns(collapsed, block)
	table := RenderTable(collapsed, block, merges, opts.IncludeMergeList)

	return model.RenderResult{
		Sheet:           g.Name,
		MarkdownTable:   table,
		NarrativeBefore: strings.Join(before, "\n"),
		NarrativeAfter:  strings.Join(after, "\n"),
		MergeRegions:    merges,
		Stats:           AggregateStats(charsBefore, collapsed.CharCount(), removed, len(merges)),
		Diagnostics:     diags,
	}
}

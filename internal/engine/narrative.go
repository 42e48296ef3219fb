package engine

import (
	"math"
	"strings"

	"gridmark/internal/model"
)

// ExtractNarrative classifies every row of the grid as tabular or
// narrative using a density heuristic. A row qualifies for the data
// block when its non-empty cell count reaches the density threshold
// relative to the sheet's modal non-empty count, and lies within a
// contiguous run of at least opts.MinBlockRows qualifying rows. The
// single longest run becomes the DataBlock; isolated dense rows (titles,
// footnotes) fall out as narrative.
//
// Rows before the block are returned as narrativeBefore lines and rows
// after it as narrativeAfter, one sheet row per line, non-empty cell
// values joined with a single space. Fully empty rows produce no line.
// When no run qualifies the block is empty and the whole sheet content
// becomes narrative text.
func ExtractNarrative(g model.Grid, opts Options) (model.DataBlock, []string, []string) {
	if g.Empty() {
		return model.EmptyDataBlock(), nil, nil
	}

	counts := make([]int, g.RowCount())
	for r, row := range g.Rows {
		for _, cell := range row {
			if cell != "" {
				counts[r]++
			}
		}
	}

	threshold := densityCutoff(counts, opts.DensityThreshold)

	minBlock := opts.MinBlockRows
	if minBlock < 1 {
		minBlock = 1
	}

	block := longestQualifyingRun(counts, threshold, minBlock)
	if block.Empty() {
		return model.EmptyDataBlock(), narrativeLines(g, 0, g.RowCount()), nil
	}

	before := narrativeLines(g, 0, block.StartRow)
	after := narrativeLines(g, block.EndRow+1, g.RowCount())
	return block, before, after
}

// densityCutoff derives the minimum non-empty cell count a tabular row
// must have: the configured fraction of the modal (most frequent)
// nonzero row density, rounded up. Ties between equally frequent counts
// go to the larger count.
func densityCutoff(counts []int, fraction float64) int {
	freq := make(map[int]int)
	for _, c := range counts {
		if c > 0 {
			freq[c]++
		}
	}
	if len(freq) == 0 {
		return 1
	}

	modal, best := 0, 0
	for count, occurrences := range freq {
		if occurrences > best || (occurrences == best && count > modal) {
			modal, best = count, occurrences
		}
	}

	if fraction <= 0 || fraction > 1 {
		fraction = 0.5
	}
	cutoff := int(math.Ceil(fraction * float64(modal)))
	if cutoff < 1 {
		cutoff = 1
	}
	return cutoff
}

// longestQualifyingRun scans the per-row density counts and returns the
// longest contiguous run of rows at or above the cutoff, provided it
// reaches the minimum block length. Earlier runs win ties so the result
// is deterministic.
func longestQualifyingRun(counts []int, cutoff, minBlock int) model.DataBlock {
	best := model.EmptyDataBlock()
	runStart := -1

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		length := end - runStart
		if length >= minBlock && length > best.RowCount() {
			best = model.DataBlock{StartRow: runStart, EndRow: end - 1}
		}
		runStart = -1
	}

	for r, c := range counts {
		if c >= cutoff {
			if runStart < 0 {
				runStart = r
			}
			continue
		}
		flush(r)
	}
	flush(len(counts))

	return best
}

// narrativeLines renders rows [from, to) as plain text lines.
func narrativeLines(g model.Grid, from, to int) []string {
	var lines []string
	for r := from; r < to && r < g.RowCount(); r++ {
		var parts []string
		for _, cell := range g.Rows[r] {
			if cell != "" {
				parts = append(parts, cell)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, " "))
		}
	}
	return lines
}

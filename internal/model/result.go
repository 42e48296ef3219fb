package model

// Diagnostic codes for recoverable structural inconsistencies found while
// resolving merge metadata. None of these abort a sheet.
const (
	DiagMergeOutOfBounds = "merge_out_of_bounds"
	DiagMergeInverted    = "merge_inverted"
	DiagMergeOverlap     = "merge_overlap"
)

// Diagnostic records one recoverable inconsistency in the source sheet.
type Diagnostic struct {
	Code    string
	Message string
}

// DataBlock is the contiguous row range classified as tabular content,
// plus the ordered column indices retained after pruning. An empty block
// has EndRow < StartRow and no columns.
type DataBlock struct {
	StartRow int
	EndRow   int
	Columns  []int
}

// EmptyDataBlock returns the canonical empty block.
func EmptyDataBlock() DataBlock {
	return DataBlock{StartRow: 0, EndRow: -1}
}

// Empty reports whether the block contains no rows.
func (b DataBlock) Empty() bool {
	return b.EndRow < b.StartRow
}

// RowCount returns the number of rows inside the block.
func (b DataBlock) RowCount() int {
	if b.Empty() {
		return 0
	}
	return b.EndRow - b.StartRow + 1
}

// Contains reports whether the row index lies inside the block.
func (b DataBlock) Contains(row int) bool {
	return !b.Empty() && row >= b.StartRow && row <= b.EndRow
}

// Stats carries the per-sheet cleanup counters. Diagnostics only, never
// consulted for control flow.
type Stats struct {
	DuplicatesRemoved     int
	MergedRegionsDetected int
	CharsBefore           int
	CharsAfter            int
}

// Add accumulates another sheet's counters, for whole-document totals.
func (s *Stats) Add(o Stats) {
	s.DuplicatesRemoved += o.DuplicatesRemoved
	s.MergedRegionsDetected += o.MergedRegionsDetected
	s.CharsBefore += o.CharsBefore
	s.CharsAfter += o.CharsAfter
}

// RenderResult is the immutable output of processing one sheet. The
// caller concatenates results in sheet order into the final document.
type RenderResult struct {
	Sheet           string
	MarkdownTable   string
	NarrativeBefore string
	NarrativeAfter  string
	MergeRegions    []MergeRegion
	Stats           Stats
	Diagnostics     []Diagnostic
}
